// Copyright (c) 2023 - 2025 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioresult

import (
	"encoding/json"
	"log"

	L "github.com/IBM/fp-go-streams/logging"
	"github.com/IBM/fp-go-streams/result"
)

// Logger constructs a step usable with ChainFirst that logs either the
// success value or the failure error using the provided loggers (or the
// default logger if none are given), then passes the result through
// unchanged.
func Logger[A any](loggers ...*log.Logger) func(string) Operator[A, A] {
	onRight, onLeft := L.LoggingCallbacks(loggers...)
	return func(prefix string) Operator[A, A] {
		return func(ma IOResult[A]) IOResult[A] {
			return func() Result[A] {
				ra := ma()
				result.MonadFold(ra,
					func(err error) Void { onLeft("%s: error: %v", prefix, err); return Void{} },
					func(a A) Void { onRight("%s: %v", prefix, a); return Void{} },
				)
				return ra
			}
		}
	}
}

// Logf logs the success value or the failure error using the standard
// library logger and a format string, then passes the result through
// unchanged. Can be used with ChainFirst.
func Logf[A any](prefix string) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return func() Result[A] {
			ra := ma()
			result.MonadFold(ra,
				func(err error) Void { log.Printf(prefix+": error: %v", err); return Void{} },
				func(a A) Void { log.Printf(prefix+": %v", a); return Void{} },
			)
			return ra
		}
	}
}

// LogJSON converts the success value to pretty printed JSON and logs it via
// the format string. Marshaling failures become IOResult failures. Can be
// used with ChainFirst.
func LogJSON[A any](prefix string) Kleisli[A, string] {
	return func(a A) IOResult[string] {
		return func() Result[string] {
			data, err := json.MarshalIndent(a, "", "  ")
			if err != nil {
				return result.Err[string](err)
			}
			log.Printf(prefix, string(data))
			return result.Ok(string(data))
		}
	}
}

// LogEntryExitF logs entry into and exit out of an IOResult computation.
// onEntry produces a start token before the computation runs; onExit
// receives that token together with the final Result and is run purely for
// its side effect. The original computation's result passes through
// unchanged.
func LogEntryExitF[A, STARTTOKEN any](
	onEntry IOResult[STARTTOKEN],
	onExit func(STARTTOKEN, Result[A]) IOResult[Void],
) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return func() Result[A] {
			rt := onEntry()
			ra := ma()
			if result.IsRight(rt) {
				token, _ := result.Unwrap(rt)
				onExit(token, ra)()
			}
			return ra
		}
	}
}

// LogEntryExit logs entry and exit around a computation using name as the
// log prefix.
func LogEntryExit[A any](name string) Operator[A, A] {
	onEntry := func() Result[string] {
		log.Printf("entering %s", name)
		return result.Ok(name)
	}
	onExit := func(token string, ra Result[A]) IOResult[Void] {
		return func() Result[Void] {
			result.MonadFold(ra,
				func(err error) Void { log.Printf("exiting %s: error: %v", token, err); return Void{} },
				func(a A) Void { log.Printf("exiting %s: %v", token, a); return Void{} },
			)
			return result.Ok(Void{})
		}
	}
	return LogEntryExitF(onEntry, onExit)
}

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

package result

import (
	"errors"
	"testing"

	F "github.com/IBM/fp-go-streams/function"
	"github.com/stretchr/testify/assert"
)

func double(x int) int { return x * 2 }

func TestRightLeft(t *testing.T) {
	assert.True(t, IsRight(Ok(42)))
	assert.False(t, IsLeft(Ok(42)))

	err := errors.New("boom")
	assert.True(t, IsLeft(Err[int](err)))
	assert.False(t, IsRight(Err[int](err)))
}

func TestMap(t *testing.T) {
	assert.Equal(t, Ok(84), Map[error](double)(Ok(42)))

	err := errors.New("boom")
	assert.Equal(t, Err[int](err), Map[error](double)(Err[int](err)))
}

func TestChain(t *testing.T) {
	halve := func(x int) Result[int] {
		if x%2 != 0 {
			return Err[int](errors.New("odd"))
		}
		return Ok(x / 2)
	}
	assert.Equal(t, Ok(21), Chain(halve)(Ok(42)))
	assert.True(t, IsLeft(Chain(halve)(Ok(41))))
}

func TestAp(t *testing.T) {
	fab := Ok[func(int) int](double)
	assert.Equal(t, Ok(84), Ap[int](Ok(42))(fab))

	err := errors.New("fn failed")
	assert.True(t, IsLeft(Ap[int](Ok(42))(Err[func(int) int](err))))
}

func TestFold(t *testing.T) {
	onLeft := func(e error) string { return "err: " + e.Error() }
	onRight := func(n int) string { return "ok" }

	assert.Equal(t, "ok", Fold(onLeft, onRight)(Ok(42)))
	assert.Equal(t, "err: boom", Fold(onLeft, onRight)(Err[int](errors.New("boom"))))
}

func TestTryCatchError(t *testing.T) {
	assert.Equal(t, Ok(42), TryCatchError(42, nil))

	err := errors.New("fail")
	assert.Equal(t, Err[int](err), TryCatchError(0, err))
}

func TestUnwrapError(t *testing.T) {
	v, err := UnwrapError(Ok(42))
	assert.Equal(t, 42, v)
	assert.NoError(t, err)

	boom := errors.New("boom")
	_, err = UnwrapError(Err[int](boom))
	assert.Equal(t, boom, err)
}

func TestGetOrElse(t *testing.T) {
	onLeft := func(error) int { return -1 }
	assert.Equal(t, 42, GetOrElse(onLeft)(Ok(42)))
	assert.Equal(t, -1, GetOrElse(onLeft)(Err[int](errors.New("boom"))))
}

type nameState struct {
	first string
	last  string
}

func TestDoNotation(t *testing.T) {
	setFirst := func(v string) func(nameState) nameState {
		return func(s nameState) nameState { s.first = v; return s }
	}
	setLast := func(v string) func(nameState) nameState {
		return func(s nameState) nameState { s.last = v; return s }
	}

	res := F.Pipe3(
		Do[error](nameState{}),
		Bind(setFirst, func(nameState) Result[string] { return Ok("John") }),
		Bind(setLast, func(nameState) Result[string] { return Ok("Doe") }),
		Map[error](func(s nameState) string { return s.first + " " + s.last }),
	)
	assert.Equal(t, Ok("John Doe"), res)
}

func TestApS(t *testing.T) {
	setFirst := func(v string) func(nameState) nameState {
		return func(s nameState) nameState { s.first = v; return s }
	}
	setLast := func(v string) func(nameState) nameState {
		return func(s nameState) nameState { s.last = v; return s }
	}

	res := F.Pipe3(
		Do[error](nameState{}),
		ApS(setFirst, Ok("John")),
		ApS(setLast, Ok("Doe")),
		Map[error](func(s nameState) string { return s.first + " " + s.last }),
	)
	assert.Equal(t, Ok("John Doe"), res)
}

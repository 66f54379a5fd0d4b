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

package io

// Bracket acquires a resource, runs use on it, and guarantees release runs
// afterward even if use panics. The panic, if any, propagates once release
// has completed.
//
// Example:
//
//	content := io.Bracket(
//	    io.Of(openFile("data.txt")),
//	    func(f *os.File) io.IO[string] { return readAll(f) },
//	    func(f *os.File) io.IO[any] { return io.FromImpure(func() { f.Close() }) },
//	)
func Bracket[R, A, ANY any](acquire IO[R], use Kleisli[R, A], release func(R) IO[ANY]) IO[A] {
	return func() A {
		r := acquire()
		defer release(r)()
		return use(r)()
	}
}

// WithResource constructs a function that creates a resource, operates on it, and then releases it.
// This is a higher-level abstraction over Bracket that simplifies resource management patterns.
//
// The resource is guaranteed to be released even if the operation fails or panics.
//
// Example:
//
//	withFile := io.WithResource(
//	    io.Of(openFile("data.txt")),
//	    func(f *os.File) io.IO[any] {
//	        return io.FromImpure(func() { f.Close() })
//	    },
//	)
//	result := withFile(func(f *os.File) io.IO[Data] {
//	    return readData(f)
//	})
func WithResource[R, A, ANY any](onCreate IO[R], onRelease func(R) IO[ANY]) func(Kleisli[R, A]) IO[A] {
	return func(use Kleisli[R, A]) IO[A] {
		return Bracket(onCreate, use, onRelease)
	}
}

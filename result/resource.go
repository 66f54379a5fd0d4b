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

// WithResource constructs a function that creates a resource, operates on it, and
// releases it afterward regardless of whether the operation failed. The release
// failure only surfaces if the operation itself succeeded.
//
// Example:
//
//	withFile := result.WithResource(
//	    func() result.Result[*os.File] { return result.TryCatchError(os.Open("file.txt")) },
//	    func(f *os.File) result.Result[any] { return result.TryCatchError[any](nil, f.Close()) },
//	)
//	data := withFile(func(f *os.File) result.Result[string] {
//	    return result.Ok("data")
//	})
func WithResource[A, E, R, ANY any](
	onCreate func() Either[E, R],
	onRelease Kleisli[E, R, ANY],
) Kleisli[E, Kleisli[E, R, A], A] {
	return func(f func(R) Either[E, A]) Either[E, A] {
		r := onCreate()
		if r.isLeft {
			return Left[A](r.l)
		}
		a := f(r.r)
		n := onRelease(r.r)
		if a.isLeft {
			return Left[A](a.l)
		}
		if n.isLeft {
			return Left[A](n.l)
		}
		return Of[E](a.r)
	}
}

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

package errors

import (
	"errors"
)

// As tries to extract an error of the desired type from the given error.
// It returns the extracted error and true on success, or the zero value and
// false if the error cannot be converted to the target type.
//
// This function wraps Go's standard errors.As in a curried style, making it
// composable with other functional operations.
//
// Example:
//
//	type MyError struct{ msg string }
//	func (e *MyError) Error() string { return e.msg }
//
//	rootErr := &MyError{msg: "custom error"}
//	wrappedErr := fmt.Errorf("wrapped: %w", rootErr)
//
//	extractMyError := As[*MyError]()
//	result, ok := extractMyError(wrappedErr)
func As[A error]() func(error) (A, bool) {
	return func(err error) (A, bool) {
		var a A
		ok := errors.As(err, &a)
		return a, ok
	}
}

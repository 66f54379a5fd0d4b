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

import (
	"testing"

	F "github.com/IBM/fp-go-streams/function"
	"github.com/stretchr/testify/assert"
)

type nameState struct {
	last  string
	given string
}

func getLastName(s nameState) IO[string] {
	return Of("Doe")
}

func getGivenName(s nameState) IO[string] {
	return Of("John")
}

func setLastName(last string) func(nameState) nameState {
	return func(s nameState) nameState {
		s.last = last
		return s
	}
}

func setGivenName(given string) func(nameState) nameState {
	return func(s nameState) nameState {
		s.given = given
		return s
	}
}

func fullName(s nameState) string {
	return s.given + " " + s.last
}

func TestBind(t *testing.T) {
	res := F.Pipe3(
		Do(nameState{}),
		Bind(setLastName, getLastName),
		Bind(setGivenName, getGivenName),
		Map(fullName),
	)

	assert.Equal(t, "John Doe", res())
}

func TestApS(t *testing.T) {
	res := F.Pipe3(
		Do(nameState{}),
		ApS(setLastName, Of("Doe")),
		ApS(setGivenName, Of("John")),
		Map(fullName),
	)

	assert.Equal(t, "John Doe", res())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/registryd/fault"
)

// State - workflow state of a unique record
type State uint8

// the states, numbered as reported to clients
const (
	Available State = iota + 1
	Applied
	Processing
	Approved
	Optioned
	Burned
)

var stateNames = map[State]string{
	Available:  "available",
	Applied:    "applied",
	Processing: "processing",
	Approved:   "approved",
	Optioned:   "optioned",
	Burned:     "burned",
}

// String - state name
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "*unknown*"
}

// MarshalText - state name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - from state name
func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fault.InvalidArgument
}

// states from which an evaluator action is legal, and the result
type transition struct {
	from []State
	to   State
}

var (
	docsSubmitted = transition{from: []State{Applied}, to: Processing}
	userQualified = transition{from: []State{Processing}, to: Approved}
	userRejected  = transition{from: []State{Applied, Processing}, to: Available}
)

func (t transition) allows(s State) bool {
	for _, from := range t.from {
		if from == s {
			return true
		}
	}
	return false
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/registryd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidAmount   = fault.InvalidError("invalid amount")
	ErrMissingCaller   = fault.InvalidError("caller identity is required")
	ErrMissingID       = fault.InvalidError("record id is required")
	ErrMissingName     = fault.InvalidError("name is required")
	ErrMissingPrefix   = fault.InvalidError("record type prefix is required")
	ErrMissingReceiver = fault.InvalidError("receiver is required")
	ErrUnknownAction   = fault.InvalidError("unknown evaluator action")
)

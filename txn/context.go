// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txn - state of one atomic ledger operation
//
// a context wraps the open storage transaction together with the
// operation's clock reading and the events it has produced so far;
// nothing here is visible outside the operation until commit
package txn

import (
	"time"

	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/storage"
)

// Context - one operation in progress
type Context struct {
	storage.Transaction
	now    time.Time
	events []event.Event
}

// New - start an operation on an open transaction
func New(trx storage.Transaction, now time.Time) *Context {
	return &Context{
		Transaction: trx,
		now:         now,
	}
}

// Now - the time the operation started
func (c *Context) Now() time.Time {
	return c.now
}

// Emit - record an event, sequenced on commit
func (c *Context) Emit(e event.Event) {
	e.Timestamp = c.now.Unix()
	c.events = append(c.events, e)
}

// Events - everything emitted so far
func (c *Context) Events() []event.Event {
	return c.events
}

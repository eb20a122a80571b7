// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/engine"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitLifecycle = 200
	rateBurstLifecycle = 100
)

// limit for batch finalise
const maximumFinalizeCount = 100

// Lifecycle - type for RPC calls
type Lifecycle struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create lifecycle RPC handler
func New(log *logger.L, e engine.Engine) *Lifecycle {
	return &Lifecycle{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLifecycle, rateBurstLifecycle),
		Engine:  e,
	}
}

// EmptyReply - result from RPC calls that return nothing
type EmptyReply struct{}

// ApplyArguments - arguments for RPC
type ApplyArguments struct {
	Caller    account.Address   `json:"caller"`
	ID        record.Identifier `json:"id"`
	Evaluator account.Address   `json:"evaluator"`
}

// Apply - bind a record to an evaluator
func (lc *Lifecycle) Apply(arguments *ApplyArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(lc.Limiter); nil != err {
		return err
	}
	return lc.Engine.Apply(arguments.Caller, arguments.ID, arguments.Evaluator)
}

// RecordArguments - arguments for RPC
type RecordArguments struct {
	Caller account.Address   `json:"caller"`
	ID     record.Identifier `json:"id"`
}

// Remove - withdraw an application
func (lc *Lifecycle) Remove(arguments *RecordArguments, _ *EmptyReply) error {
	return lc.record(arguments, lc.Engine.Remove)
}

// DocsSubmitted - evaluator moves applied to processing
func (lc *Lifecycle) DocsSubmitted(arguments *RecordArguments, _ *EmptyReply) error {
	return lc.record(arguments, lc.Engine.DocsSubmitted)
}

// UserQualified - evaluator approves
func (lc *Lifecycle) UserQualified(arguments *RecordArguments, _ *EmptyReply) error {
	return lc.record(arguments, lc.Engine.UserQualified)
}

// UserRejected - evaluator returns the record to available
func (lc *Lifecycle) UserRejected(arguments *RecordArguments, _ *EmptyReply) error {
	return lc.record(arguments, lc.Engine.UserRejected)
}

func (lc *Lifecycle) record(arguments *RecordArguments, action func(account.Address, record.Identifier) error) error {
	if err := ratelimit.Limit(lc.Limiter); nil != err {
		return err
	}
	return action(arguments.Caller, arguments.ID)
}

// ---

// FinalizeArguments - arguments for RPC
type FinalizeArguments struct {
	Caller account.Address     `json:"caller"`
	IDs    []record.Identifier `json:"ids"`
}

// Finalize - burn approved records
func (lc *Lifecycle) Finalize(arguments *FinalizeArguments, _ *EmptyReply) error {
	if err := ratelimit.LimitN(lc.Limiter, len(arguments.IDs), maximumFinalizeCount); nil != err {
		return err
	}

	lc.Log.Infof("Lifecycle.Finalize: %d records", len(arguments.IDs))

	if 1 == len(arguments.IDs) {
		return lc.Engine.Finalize(arguments.Caller, arguments.IDs[0])
	}
	return lc.Engine.FinalizeBatch(arguments.Caller, arguments.IDs)
}

// ---

// StateArguments - arguments for RPC
type StateArguments struct {
	ID record.Identifier `json:"id"`
}

// StateReply - result from RPC
type StateReply struct {
	State     lifecycle.State `json:"state"`
	Evaluator account.Address `json:"evaluator"`
}

// State - current state, including a sale listing, and bound evaluator
func (lc *Lifecycle) State(arguments *StateArguments, reply *StateReply) error {
	if err := ratelimit.Limit(lc.Limiter); nil != err {
		return err
	}
	_, reply.Evaluator = lc.Engine.Binding(arguments.ID)
	reply.State = lc.Engine.State(arguments.ID)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/evaluator.go -package=mocks github.com/bitmark-inc/registryd/lifecycle Evaluator

// Package lifecycle - application workflow of unique records
//
//   Available  --apply(evaluator)-->     Applied
//   Applied    --docs submitted-->       Processing
//   Processing --user qualified-->       Approved
//   Applied    --user rejected-->        Available
//   Processing --user rejected-->        Available
//   Approved   --finalize-->             burned
//   Applied    --remove (owner)-->       Available
//   Processing --remove (owner)-->       Available
//
// only the evaluator bound by apply may drive the evaluator transitions
package lifecycle

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Handles - storage pools used by the state machine
type Handles struct {
	Lifecycle  *storage.PoolHandle
	Burned     *storage.PoolHandle
	Evaluators *storage.PoolHandle
}

// OptionFunc - reports an outstanding sale option
type OptionFunc func(rd storage.Reader, id record.Identifier) bool

// Machine - the lifecycle state machine
type Machine struct {
	sync.RWMutex
	log        *logger.L
	pools      Handles
	registry   *registry.Registry
	ledger     *ledger.Ledger
	optioned   OptionFunc
	evaluators map[account.Address]Evaluator
}

// New - create the state machine
func New(log *logger.L, pools Handles, reg *registry.Registry, l *ledger.Ledger) *Machine {
	return &Machine{
		log:        log,
		pools:      pools,
		registry:   reg,
		ledger:     l,
		evaluators: make(map[account.Address]Evaluator),
	}
}

// SetOptionCheck - install the sale option test
func (m *Machine) SetOptionCheck(f OptionFunc) {
	m.Lock()
	m.optioned = f
	m.Unlock()
}

func (m *Machine) isOptioned(rd storage.Reader, id record.Identifier) bool {
	m.RLock()
	f := m.optioned
	m.RUnlock()
	return nil != f && f(rd, id)
}

// Binding - base state and bound evaluator
//
// the evaluator is null unless the state is Applied, Processing or Approved
func (m *Machine) Binding(rd storage.Reader, id record.Identifier) (State, account.Address) {
	if rd.Has(m.pools.Burned, id.Bytes()) {
		return Burned, account.Null
	}
	buffer := rd.Get(m.pools.Lifecycle, id.Bytes())
	if 1+account.AddressLength != len(buffer) {
		return Available, account.Null
	}
	evaluator, _ := account.AddressFromBytes(buffer[1:])
	return State(buffer[0]), evaluator
}

// State - reported state including the sale option overlay
func (m *Machine) State(rd storage.Reader, id record.Identifier) State {
	state, _ := m.Binding(rd, id)
	if Available == state && m.isOptioned(rd, id) {
		return Optioned
	}
	return state
}

// IsLocked - true while the workflow forbids plain transfer
func (m *Machine) IsLocked(rd storage.Reader, id record.Identifier) bool {
	state, _ := m.Binding(rd, id)
	return Available != state
}

// Apply - owner binds an evaluator and starts the workflow
func (m *Machine) Apply(ctx *txn.Context, caller account.Address, id record.Identifier, evaluator account.Address) error {
	if !id.IsUniqueInstance() {
		return fault.InvalidArgument
	}
	if _, err := m.ledger.Descriptor(ctx, id); nil != err {
		return err
	}

	state, _ := m.Binding(ctx, id)
	if Burned == state {
		return fault.RecordNotAvailable
	}
	if owner, _ := m.ledger.OwnerOf(ctx, id); owner != caller {
		return fault.Forbidden
	}
	if Available != state || m.isOptioned(ctx, id) {
		return fault.RecordNotAvailable
	}
	if evaluator.IsNull() {
		return fault.NullAddress
	}
	if !m.IsTrusted(ctx, id.Prefix(), evaluator) {
		return fault.UntrustedEvaluator
	}

	if e := m.evaluator(evaluator); nil != e && !e.Applied(id, caller) {
		return fault.ApplicationRejected
	}

	m.set(ctx, caller, id, Available, Applied, evaluator)
	return nil
}

// Remove - owner withdraws an application that is not yet approved
func (m *Machine) Remove(ctx *txn.Context, caller account.Address, id record.Identifier) error {
	if !id.IsUniqueInstance() {
		return fault.InvalidArgument
	}

	state, evaluator := m.Binding(ctx, id)
	if Burned == state {
		return fault.RecordNotRemovable
	}
	if owner, _ := m.ledger.OwnerOf(ctx, id); owner != caller {
		return fault.Forbidden
	}
	if Applied != state && Processing != state {
		return fault.RecordNotRemovable
	}

	m.set(ctx, caller, id, state, Available, account.Null)

	if e := m.evaluator(evaluator); nil != e {
		e.Withdrawn(id)
	}
	return nil
}

// DocsSubmitted - evaluator moves Applied to Processing
func (m *Machine) DocsSubmitted(ctx *txn.Context, caller account.Address, id record.Identifier) error {
	return m.advance(ctx, caller, id, docsSubmitted)
}

// UserQualified - evaluator moves Processing to Approved
func (m *Machine) UserQualified(ctx *txn.Context, caller account.Address, id record.Identifier) error {
	return m.advance(ctx, caller, id, userQualified)
}

// UserRejected - evaluator returns the record to Available
func (m *Machine) UserRejected(ctx *txn.Context, caller account.Address, id record.Identifier) error {
	return m.advance(ctx, caller, id, userRejected)
}

// Finalize - evaluator burns an approved record
func (m *Machine) Finalize(ctx *txn.Context, caller account.Address, id record.Identifier) error {
	state, err := m.authorise(ctx, caller, id)
	if nil != err {
		return err
	}
	if Approved != state {
		return fault.InvalidTransition
	}

	err = m.ledger.Burn(ctx, caller, id)
	if nil != err {
		return err
	}

	ctx.Delete(m.pools.Lifecycle, id.Bytes())
	ctx.Put(m.pools.Burned, id.Bytes(), []byte{1})

	m.emit(ctx, caller, id, Approved, Burned, caller)
	m.log.Debugf("finalize: %s  evaluator: %s", id, caller)
	return nil
}

// FinalizeBatch - finalize several records as one unit
func (m *Machine) FinalizeBatch(ctx *txn.Context, caller account.Address, ids []record.Identifier) error {
	if 0 == len(ids) || len(ids) > ledger.MaximumBatchSize {
		return fault.InvalidArgument
	}
	for _, id := range ids {
		if id.IsNull() {
			continue
		}
		err := m.Finalize(ctx, caller, id)
		if nil != err {
			return err
		}
	}
	return nil
}

// caller must be the evaluator bound to the record
func (m *Machine) authorise(ctx *txn.Context, caller account.Address, id record.Identifier) (State, error) {
	if !id.IsUniqueInstance() {
		return 0, fault.InvalidArgument
	}
	state, evaluator := m.Binding(ctx, id)
	if evaluator.IsNull() || caller != evaluator {
		return state, fault.Unauthorized
	}
	return state, nil
}

func (m *Machine) advance(ctx *txn.Context, caller account.Address, id record.Identifier, t transition) error {
	state, err := m.authorise(ctx, caller, id)
	if nil != err {
		return err
	}
	if !t.allows(state) {
		return fault.InvalidTransition
	}

	evaluator := caller
	if Available == t.to {
		evaluator = account.Null
	}
	m.set(ctx, caller, id, state, t.to, evaluator)
	return nil
}

func (m *Machine) set(ctx *txn.Context, caller account.Address, id record.Identifier, from State, to State, evaluator account.Address) {
	if Available == to {
		ctx.Delete(m.pools.Lifecycle, id.Bytes())
	} else {
		buffer := make([]byte, 0, 1+account.AddressLength)
		buffer = append(buffer, byte(to))
		buffer = append(buffer, evaluator[:]...)
		ctx.Put(m.pools.Lifecycle, id.Bytes(), buffer)
	}

	m.emit(ctx, caller, id, from, to, evaluator)
	m.log.Debugf("lifecycle: %s  %s -> %s  caller: %s", id, from, to, caller)
}

func (m *Machine) emit(ctx *txn.Context, caller account.Address, id record.Identifier, from State, to State, evaluator account.Address) {
	ctx.Emit(event.Event{
		Kind:     event.LifecycleChanged,
		Record:   id,
		Operator: caller,
		To:       evaluator,
		OldState: from.String(),
		NewState: to.String(),
	})
}

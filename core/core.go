// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/publisher.go -package=mocks github.com/bitmark-inc/registryd/core Publisher

// Package core - the ledger, lifecycle and escrow behind one lock
//
// every mutating operation runs as: lock, begin transaction, validate
// and mutate, store events, commit, publish.  Any error aborts the
// transaction so no partial state is ever visible.  Receiver and
// evaluator hooks are called with the lock held and must not call back
// into the core.
package core

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/escrow"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Publisher - receives events after each commit
type Publisher interface {
	Publish(events []event.Event)
}

// Options - how to build the core
type Options struct {
	Creators  []account.Address // empty allows anyone to create types
	Escrow    account.Address   // identity of the exchange
	Publisher Publisher
	Clock     func() time.Time
}

// Core - the complete engine
type Core struct {
	sync.RWMutex
	log       *logger.L
	db        *storage.Database
	registry  *registry.Registry
	ledger    *ledger.Ledger
	machine   *lifecycle.Machine
	exchange  *escrow.Exchange
	publisher Publisher
	clock     func() time.Time
}

// New - connect all components to an open database
func New(db *storage.Database, options Options) (*Core, error) {
	if options.Escrow.IsNull() {
		return nil, fault.NullAddress
	}

	clock := options.Clock
	if nil == clock {
		clock = time.Now
	}

	reg := registry.New(logger.New("registry"), registry.Handles{
		Descriptors:   db.Pool.Descriptors,
		TypeIndex:     db.Pool.TypeIndex,
		MintApprovals: db.Pool.MintApprovals,
		Globals:       db.Pool.Globals,
	}, options.Creators)

	l := ledger.New(logger.New("ledger"), ledger.Handles{
		Balances:       db.Pool.Balances,
		Owners:         db.Pool.Owners,
		Supply:         db.Pool.Supply,
		Operators:      db.Pool.Operators,
		Allowances:     db.Pool.Allowances,
		NativeBalances: db.Pool.NativeBalances,
	}, reg)

	m := lifecycle.New(logger.New("lifecycle"), lifecycle.Handles{
		Lifecycle:  db.Pool.Lifecycle,
		Burned:     db.Pool.Burned,
		Evaluators: db.Pool.Evaluators,
	}, reg, l)

	x := escrow.New(logger.New("escrow"), escrow.Handles{
		Options: db.Pool.Options,
	}, l, m, options.Escrow)

	// a listing locks the record exactly as an application does
	l.SetLockCheck(func(rd storage.Reader, id record.Identifier) bool {
		return m.IsLocked(rd, id) || x.HasOption(rd, id)
	})
	m.SetOptionCheck(x.HasOption)

	c := &Core{
		log:       logger.New("core"),
		db:        db,
		registry:  reg,
		ledger:    l,
		machine:   m,
		exchange:  x,
		publisher: options.Publisher,
		clock:     clock,
	}
	c.log.Infof("escrow: %s", options.Escrow)
	return c, nil
}

// RegisterReceiver - install a receipt hook for a component holder
func (c *Core) RegisterReceiver(address account.Address, r ledger.Receiver) {
	c.ledger.RegisterReceiver(address, r)
}

// UnregisterReceiver - remove a receipt hook
func (c *Core) UnregisterReceiver(address account.Address) {
	c.ledger.UnregisterReceiver(address)
}

// RegisterEvaluator - install an in-process evaluator
func (c *Core) RegisterEvaluator(e lifecycle.Evaluator) {
	c.machine.RegisterEvaluator(e)
}

// run one atomic operation
func (c *Core) execute(name string, operation func(ctx *txn.Context) error) error {
	c.Lock()
	start := time.Now()

	events, err := c.transact(operation)

	recordOperation(name, err, time.Since(start))
	c.Unlock()

	if nil != err {
		c.log.Debugf("%s: error: %s", name, err)
		return err
	}

	c.log.Debugf("%s: ok  events: %d", name, len(events))
	if nil != c.publisher && 0 != len(events) {
		c.publisher.Publish(events)
	}
	return nil
}

// must hold lock
func (c *Core) transact(operation func(ctx *txn.Context) error) ([]event.Event, error) {
	trx, err := c.db.Begin()
	if nil != err {
		return nil, err
	}

	ctx := txn.New(trx, c.clock())
	err = operation(ctx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	events, err := event.Store(trx, c.db.Pool.Events, c.db.Pool.Globals, ctx.Events())
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		fault.Criticalf("commit error: %s", err)
		return nil, err
	}
	eventsStored.Add(float64(len(events)))
	return events, nil
}

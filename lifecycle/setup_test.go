// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

type testMachine struct {
	db      *storage.Database
	ledger  *ledger.Ledger
	machine *lifecycle.Machine
	ctx     *txn.Context
	prefix  record.Prefix
}

// one unique type with the fixture evaluator trusted
func setup(t *testing.T) *testMachine {
	fixtures.SetupTestLogger()

	db, err := storage.Open("")
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	reg := registry.New(log, registry.Handles{
		Descriptors:   db.Pool.Descriptors,
		TypeIndex:     db.Pool.TypeIndex,
		MintApprovals: db.Pool.MintApprovals,
		Globals:       db.Pool.Globals,
	}, nil)

	l := ledger.New(log, ledger.Handles{
		Balances:       db.Pool.Balances,
		Owners:         db.Pool.Owners,
		Supply:         db.Pool.Supply,
		Operators:      db.Pool.Operators,
		Allowances:     db.Pool.Allowances,
		NativeBalances: db.Pool.NativeBalances,
	}, reg)

	m := lifecycle.New(log, lifecycle.Handles{
		Lifecycle:  db.Pool.Lifecycle,
		Burned:     db.Pool.Burned,
		Evaluators: db.Pool.Evaluators,
	}, reg, l)
	l.SetLockCheck(m.IsLocked)

	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	ctx := txn.New(trx, time.Now())

	prefix, err := reg.CreateType(ctx, fixtures.Creator, "deed", record.Unique)
	if nil != err {
		t.Fatalf("create type error: %s", err)
	}
	err = m.TrustEvaluator(ctx, fixtures.Creator, prefix, fixtures.Evaluator, true)
	if nil != err {
		t.Fatalf("trust error: %s", err)
	}

	return &testMachine{
		db:      db,
		ledger:  l,
		machine: m,
		ctx:     ctx,
		prefix:  prefix,
	}
}

func (tm *testMachine) teardown() {
	tm.ctx.Abort()
	tm.db.Close()
	fixtures.TeardownTestLogger()
}

func (tm *testMachine) mint(t *testing.T, to account.Address) record.Identifier {
	ids, err := tm.ledger.MintUnique(tm.ctx, fixtures.Creator, tm.prefix, []account.Address{to})
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return ids[0]
}

func (tm *testMachine) applied(t *testing.T, to account.Address) record.Identifier {
	id := tm.mint(t, to)
	err := tm.machine.Apply(tm.ctx, to, id, fixtures.Evaluator)
	if nil != err {
		t.Fatalf("apply error: %s", err)
	}
	return id
}

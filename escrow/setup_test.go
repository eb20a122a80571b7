// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/currency/fungible"
	"github.com/bitmark-inc/registryd/escrow"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

var now = time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)

type testExchange struct {
	db       *storage.Database
	ledger   *ledger.Ledger
	machine  *lifecycle.Machine
	exchange *escrow.Exchange
	token    *fungible.Token
	ctx      *txn.Context
	prefix   record.Prefix
}

func setup(t *testing.T) *testExchange {
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

	x := escrow.New(log, escrow.Handles{
		Options: db.Pool.Options,
	}, l, m, fixtures.Escrow)

	l.SetLockCheck(func(rd storage.Reader, id record.Identifier) bool {
		return m.IsLocked(rd, id) || x.HasOption(rd, id)
	})
	m.SetOptionCheck(x.HasOption)

	token := fungible.New(log, fungible.Handles{
		Balances:   db.Pool.AssetBalances,
		Allowances: db.Pool.AssetAllowances,
		Supply:     db.Pool.AssetSupply,
	}, "USD", fixtures.Creator)
	x.RegisterAsset(token)

	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	ctx := txn.New(trx, now)

	prefix, err := reg.CreateType(ctx, fixtures.Creator, "deed", record.Unique)
	if nil != err {
		t.Fatalf("create type error: %s", err)
	}
	err = m.TrustEvaluator(ctx, fixtures.Creator, prefix, fixtures.Evaluator, true)
	if nil != err {
		t.Fatalf("trust error: %s", err)
	}

	return &testExchange{
		db:       db,
		ledger:   l,
		machine:  m,
		exchange: x,
		token:    token,
		ctx:      ctx,
		prefix:   prefix,
	}
}

func (tx *testExchange) teardown() {
	tx.ctx.Abort()
	tx.db.Close()
	fixtures.TeardownTestLogger()
}

func (tx *testExchange) mint(t *testing.T, to account.Address) record.Identifier {
	ids, err := tx.ledger.MintUnique(tx.ctx, fixtures.Creator, tx.prefix, []account.Address{to})
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return ids[0]
}

// a later clock reading on the same transaction
func (tx *testExchange) at(when time.Time) *txn.Context {
	return txn.New(tx.ctx.Transaction, when)
}

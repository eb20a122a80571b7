// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

type testLedger struct {
	db       *storage.Database
	registry *registry.Registry
	ledger   *ledger.Ledger
	ctx      *txn.Context
}

func setup(t *testing.T) *testLedger {
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

	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	return &testLedger{
		db:       db,
		registry: reg,
		ledger:   l,
		ctx:      txn.New(trx, time.Now()),
	}
}

func (tl *testLedger) teardown() {
	tl.ctx.Abort()
	tl.db.Close()
	fixtures.TeardownTestLogger()
}

func (tl *testLedger) uniqueType(t *testing.T) record.Prefix {
	prefix, err := tl.registry.CreateType(tl.ctx, fixtures.Creator, "deed", record.Unique)
	if nil != err {
		t.Fatalf("create type error: %s", err)
	}
	return prefix
}

func (tl *testLedger) fungibleType(t *testing.T) record.Prefix {
	prefix, err := tl.registry.CreateType(tl.ctx, fixtures.Creator, "gold", record.Fungible)
	if nil != err {
		t.Fatalf("create type error: %s", err)
	}
	return prefix
}

func (tl *testLedger) mintUnique(t *testing.T, prefix record.Prefix, to account.Address) record.Identifier {
	ids, err := tl.ledger.MintUnique(tl.ctx, fixtures.Creator, prefix, []account.Address{to})
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return ids[0]
}

func (tl *testLedger) mintFungible(t *testing.T, prefix record.Prefix, to account.Address, amount uint64) {
	err := tl.ledger.MintFungible(tl.ctx, fixtures.Creator, prefix, []account.Address{to}, []uint64{amount})
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
}

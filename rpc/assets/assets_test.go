// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/core"
	"github.com/bitmark-inc/registryd/currency/fungible"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/rpc/assets"
	"github.com/bitmark-inc/registryd/storage"
)

func setup(t *testing.T) (*assets.Assets, *core.Core, *storage.Database) {
	log := logger.New(fixtures.LogCategory)

	db, err := storage.Open("")
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	c, err := core.New(db, core.Options{Escrow: fixtures.Escrow})
	if nil != err {
		t.Fatalf("core error: %s", err)
	}

	usd, err := c.HostAsset("USD", fixtures.Creator, map[account.Address]uint64{fixtures.Bob: 1000})
	if nil != err {
		t.Fatalf("host error: %s", err)
	}
	eur, err := c.HostAsset("EUR", fixtures.Creator, nil)
	if nil != err {
		t.Fatalf("host error: %s", err)
	}

	return assets.New(log, c, []assets.Token{usd, eur}), c, db
}

func TestAssetsList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a, _, db := setup(t)
	defer db.Close()
	usd := fungible.Address("USD")

	var reply assets.ListReply
	err := a.List(&assets.ListArguments{}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 2, len(reply.Tokens), "wrong token count")
	assert.Equal(t, "EUR", reply.Tokens[0].Symbol, "not in symbol order")
	assert.Equal(t, "USD", reply.Tokens[1].Symbol, "not in symbol order")
	assert.Equal(t, usd, reply.Tokens[1].Address, "wrong address")
	assert.Equal(t, uint64(1000), reply.Tokens[1].Supply, "wrong supply")
}

func TestAssetsApproveAndTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a, c, db := setup(t)
	defer db.Close()
	usd := fungible.Address("USD")

	var empty assets.EmptyReply
	err := a.Approve(&assets.ApproveArguments{
		Token:   usd,
		Caller:  fixtures.Bob,
		Spender: fixtures.Escrow,
		Amount:  300,
	}, &empty)
	assert.Nil(t, err, "wrong Approve")

	err = a.Transfer(&assets.TransferArguments{
		Token:  usd,
		Caller: fixtures.Bob,
		To:     fixtures.Alice,
		Amount: 100,
	}, &empty)
	assert.Nil(t, err, "wrong Transfer")

	var reply assets.BalanceReply
	err = a.Balance(&assets.BalanceArguments{
		Token:   usd,
		Holder:  fixtures.Bob,
		Spender: fixtures.Escrow,
	}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(900), reply.Balance, "wrong balance")
	assert.Equal(t, uint64(300), reply.Allowance, "wrong allowance")

	err = a.Transfer(&assets.TransferArguments{
		Token:  usd,
		Caller: fixtures.Alice,
		To:     fixtures.Bob,
		Amount: 101,
	}, &empty)
	assert.Equal(t, fault.InsufficientBalance, err, "overdraft accepted")

	balance, err := c.AssetBalance(usd, fixtures.Alice)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(100), balance, "failed transfer changed balance")
}

func TestAssetsUnknownToken(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a, _, db := setup(t)
	defer db.Close()

	var reply assets.BalanceReply
	err := a.Balance(&assets.BalanceArguments{
		Token:  fungible.Address("GBP"),
		Holder: fixtures.Bob,
	}, &reply)
	assert.Equal(t, fault.UnknownCurrency, err, "unknown token accepted")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/currency"
	"github.com/bitmark-inc/registryd/currency/mocks"
	"github.com/bitmark-inc/registryd/escrow"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/lifecycle"
)

func TestOptionPacking(t *testing.T) {
	o := &escrow.Option{
		Seller:   fixtures.Alice,
		Buyer:    fixtures.Bob,
		Currency: currency.Native,
		Price:    1234567,
		Expires:  now.Add(250 * time.Millisecond),
	}
	back, err := escrow.UnpackOption(o.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, o, back, "round trip")

	_, err = escrow.UnpackOption(o.Pack()[:50])
	assert.Equal(t, fault.TruncatedOption, err, "truncated option")
}

// sell for native value to a named buyer and settle
func TestBuyNative(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	assert.Nil(t, tx.ledger.Deposit(tx.ctx, fixtures.Bob, 25), "deposit error")

	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, fixtures.Bob, currency.Native, 10, now.Add(time.Hour))
	assert.Nil(t, err, "sell error")
	assert.Equal(t, lifecycle.Optioned, tx.machine.State(tx.ctx, id), "not optioned")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, currency.Native, 9)
	assert.Equal(t, fault.PaymentFailed, err, "underpayment accepted")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, currency.Native, 10)
	assert.Nil(t, err, "buy error")

	owner, _ := tx.ledger.OwnerOf(tx.ctx, id)
	assert.Equal(t, fixtures.Bob, owner, "buyer does not own record")
	assert.Equal(t, uint64(10), tx.ledger.NativeBalance(tx.ctx, fixtures.Alice), "seller not paid")
	assert.Equal(t, uint64(15), tx.ledger.NativeBalance(tx.ctx, fixtures.Bob), "buyer not charged")
	assert.Equal(t, lifecycle.Available, tx.machine.State(tx.ctx, id), "not available")
	assert.False(t, tx.exchange.HasOption(tx.ctx, id), "option remains")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, currency.Native, 10)
	assert.Equal(t, fault.OptionNotFound, err, "bought twice")
}

func TestBuyNativeWithoutFunds(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Nil(t, err, "sell error")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, currency.Native, 10)
	assert.Equal(t, fault.PaymentFailed, err, "bought without funds")
}

func TestBuyChecks(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	expires := now.Add(time.Hour)
	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, fixtures.Bob, currency.Native, 10, expires)
	assert.Nil(t, err, "sell error")

	err = tx.exchange.Buy(tx.ctx, fixtures.Carol, id, currency.Native, 10)
	assert.Equal(t, fault.WrongBuyer, err, "wrong buyer accepted")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, tx.token.Address(), 0)
	assert.Equal(t, fault.CurrencyMismatch, err, "currency mismatch accepted")

	err = tx.exchange.Buy(tx.at(expires), fixtures.Bob, id, currency.Native, 10)
	assert.Equal(t, fault.OptionExpired, err, "bought at expiry")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, tx.mint(t, fixtures.Alice), currency.Native, 10)
	assert.Equal(t, fault.OptionNotFound, err, "bought unlisted record")
}

// an expiry with a fractional second holds until that exact instant
func TestSubSecondExpiry(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	expires := now.Add(900 * time.Millisecond)
	assert.Nil(t, tx.ledger.Deposit(tx.ctx, fixtures.Bob, 10), "deposit error")

	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 10, expires)
	assert.Nil(t, err, "sell error")

	o, err := tx.exchange.OptionOf(tx.ctx, id)
	assert.Nil(t, err, "option error")
	assert.Equal(t, expires, o.Expires, "expiry lost precision")

	err = tx.exchange.Buy(tx.at(expires), fixtures.Bob, id, currency.Native, 10)
	assert.Equal(t, fault.OptionExpired, err, "bought at expiry")

	err = tx.exchange.Buy(tx.at(now.Add(100*time.Millisecond)), fixtures.Bob, id, currency.Native, 10)
	assert.Nil(t, err, "buy before expiry")
}

func TestSellChecks(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)

	err := tx.exchange.Sell(tx.ctx, fixtures.Bob, id, account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Equal(t, fault.Forbidden, err, "non owner sold")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, fixtures.Carol, 10, now.Add(time.Hour))
	assert.Equal(t, fault.UnknownCurrency, err, "unknown currency")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 10, now)
	assert.Equal(t, fault.InvalidExpiry, err, "expiry not in future")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 0, now.Add(time.Hour))
	assert.Equal(t, fault.InvalidArgument, err, "zero price")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, tx.prefix.Identifier(), account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Equal(t, fault.InvalidArgument, err, "descriptor sold")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Nil(t, err, "sell error")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 20, now.Add(time.Hour))
	assert.Equal(t, fault.RecordNotAvailable, err, "listed twice")
}

// an option and an application exclude each other
func TestOptionExcludesApplication(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	listed := tx.mint(t, fixtures.Alice)
	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, listed, account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Nil(t, err, "sell error")

	err = tx.machine.Apply(tx.ctx, fixtures.Alice, listed, fixtures.Evaluator)
	assert.Equal(t, fault.RecordNotAvailable, err, "applied while listed")

	err = tx.ledger.SafeTransfer(tx.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, listed, 1, nil)
	assert.Equal(t, fault.RecordLocked, err, "transferred while listed")

	applied := tx.mint(t, fixtures.Alice)
	assert.Nil(t, tx.machine.Apply(tx.ctx, fixtures.Alice, applied, fixtures.Evaluator), "apply error")

	err = tx.exchange.Sell(tx.ctx, fixtures.Alice, applied, account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Equal(t, fault.RecordNotAvailable, err, "listed while applied")
}

func TestCancel(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	expires := now.Add(time.Hour)
	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 10, expires)
	assert.Nil(t, err, "sell error")

	o, err := tx.exchange.OptionOf(tx.ctx, id)
	assert.Nil(t, err, "option error")
	assert.Equal(t, fixtures.Alice, o.Seller, "wrong seller")
	assert.True(t, o.IsOpen(), "option not open")
	assert.Equal(t, expires, o.Expires, "wrong expiry")

	// listing locks the record in place, it is never held by the escrow
	owner, _ := tx.ledger.OwnerOf(tx.ctx, id)
	assert.Equal(t, fixtures.Alice, owner, "listed record left the seller")
	assert.Equal(t, uint64(0), tx.ledger.BalanceOf(tx.ctx, fixtures.Escrow, id), "escrow holds listed record")

	err = tx.exchange.Cancel(tx.ctx, fixtures.Bob, id)
	assert.Equal(t, fault.Forbidden, err, "non seller cancelled")

	// an expired listing still locks until cancelled
	late := tx.at(expires.Add(time.Minute))
	err = tx.ledger.SafeTransfer(late, fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 1, nil)
	assert.Equal(t, fault.RecordLocked, err, "expired listing unlocked")

	assert.Nil(t, tx.exchange.Cancel(late, fixtures.Alice, id), "cancel error")
	assert.Equal(t, lifecycle.Available, tx.machine.State(tx.ctx, id), "not available")
	owner, _ = tx.ledger.OwnerOf(tx.ctx, id)
	assert.Equal(t, fixtures.Alice, owner, "cancel moved the record")

	err = tx.exchange.Cancel(tx.ctx, fixtures.Alice, id)
	assert.Equal(t, fault.OptionNotFound, err, "cancelled twice")

	err = tx.ledger.SafeTransfer(tx.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 1, nil)
	assert.Nil(t, err, "transfer after cancel")
}

func TestBuyWithAsset(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	asset := tx.token.Address()

	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, asset, 10, now.Add(time.Hour))
	assert.Nil(t, err, "sell error")

	assert.Nil(t, tx.token.Mint(tx.ctx, fixtures.Creator, fixtures.Bob, 50), "token mint error")

	// no approval yet
	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, asset, 0)
	assert.Equal(t, fault.PaymentFailed, err, "bought without approval")

	before, _ := tx.exchange.OptionOf(tx.ctx, id)
	assert.True(t, tx.exchange.HasOption(tx.ctx, id), "option cleared")
	owner, _ := tx.ledger.OwnerOf(tx.ctx, id)
	assert.Equal(t, fixtures.Alice, owner, "ownership moved")
	assert.Equal(t, uint64(10), before.Price, "option changed")

	assert.Nil(t, tx.token.Approve(tx.ctx, fixtures.Bob, fixtures.Escrow, 10), "token approve error")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, asset, 1)
	assert.Equal(t, fault.PaymentFailed, err, "native value with asset settlement")

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, asset, 0)
	assert.Nil(t, err, "buy error")

	owner, _ = tx.ledger.OwnerOf(tx.ctx, id)
	assert.Equal(t, fixtures.Bob, owner, "buyer does not own record")
	assert.Equal(t, uint64(10), tx.token.BalanceOf(tx.ctx, fixtures.Alice), "seller not paid")
	assert.Equal(t, uint64(40), tx.token.BalanceOf(tx.ctx, fixtures.Bob), "buyer not charged")
	assert.Equal(t, uint64(0), tx.token.Allowance(tx.ctx, fixtures.Bob, fixtures.Escrow), "allowance not consumed")
}

func TestAssetPullFailure(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	asset := account.NewAddress("asset:mock")
	m := mocks.NewMockAsset(ctl)
	m.EXPECT().Address().Return(asset).Times(1)
	tx.exchange.RegisterAsset(m)

	id := tx.mint(t, fixtures.Alice)
	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, asset, 10, now.Add(time.Hour))
	assert.Nil(t, err, "sell error")

	m.EXPECT().Allowance(gomock.Any(), fixtures.Bob, fixtures.Escrow).Return(uint64(10)).Times(1)
	m.EXPECT().BalanceOf(gomock.Any(), fixtures.Bob).Return(uint64(10)).Times(1)
	m.EXPECT().TransferFrom(gomock.Any(), fixtures.Escrow, fixtures.Bob, fixtures.Alice, uint64(10)).Return(fault.InsufficientBalance).Times(1)

	err = tx.exchange.Buy(tx.ctx, fixtures.Bob, id, asset, 0)
	assert.Equal(t, fault.PaymentFailed, err, "pull failure ignored")
}

func TestSellAfterBurn(t *testing.T) {
	tx := setup(t)
	defer tx.teardown()

	id := tx.mint(t, fixtures.Alice)
	assert.Nil(t, tx.machine.Apply(tx.ctx, fixtures.Alice, id, fixtures.Evaluator), "apply error")
	assert.Nil(t, tx.machine.DocsSubmitted(tx.ctx, fixtures.Evaluator, id), "docs submitted error")
	assert.Nil(t, tx.machine.UserQualified(tx.ctx, fixtures.Evaluator, id), "qualified error")
	assert.Nil(t, tx.machine.Finalize(tx.ctx, fixtures.Evaluator, id), "finalize error")

	err := tx.exchange.Sell(tx.ctx, fixtures.Alice, id, account.Null, currency.Native, 10, now.Add(time.Hour))
	assert.Equal(t, fault.RecordNotAvailable, err, "burned record listed")
}

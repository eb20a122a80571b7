// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/core"
	coremocks "github.com/bitmark-inc/registryd/core/mocks"
	"github.com/bitmark-inc/registryd/currency"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ledger/mocks"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

func TestNewRequiresEscrow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, err := storage.Open("")
	assert.Nil(t, err, "open error")
	defer db.Close()

	_, err = core.New(db, core.Options{})
	assert.Equal(t, fault.NullAddress, err, "null escrow accepted")
}

// sell for native value and settle before expiry
func TestNativeSale(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	id := tc.mint(t, prefix, fixtures.Alice)
	assert.Nil(t, tc.core.Deposit(fixtures.Bob, 10), "deposit error")

	expiry := tc.clock.Now().Add(24 * time.Hour)
	err := tc.core.Sell(fixtures.Alice, id, fixtures.Bob, currency.Native, 10, expiry)
	assert.Nil(t, err, "sell error")
	assert.Equal(t, lifecycle.Optioned, tc.core.State(id), "not optioned")

	tc.clock.Advance(time.Hour)
	err = tc.core.Buy(fixtures.Bob, id, currency.Native, 10)
	assert.Nil(t, err, "buy error")

	owner, _ := tc.core.OwnerOf(id)
	assert.Equal(t, fixtures.Bob, owner, "buyer does not own record")
	assert.Equal(t, uint64(10), tc.core.NativeBalance(fixtures.Alice), "seller not paid")
	assert.Equal(t, uint64(0), tc.core.NativeBalance(fixtures.Bob), "buyer not charged")
	assert.Equal(t, lifecycle.Available, tc.core.State(id), "not available")

	_, err = tc.core.Option(id)
	assert.Equal(t, fault.OptionNotFound, err, "option remains")
}

// only the bound evaluator advances an application
func TestNonEvaluatorCallbacksRejected(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	id := tc.mint(t, prefix, fixtures.Alice)
	assert.Nil(t, tc.core.Apply(fixtures.Alice, id, fixtures.Evaluator), "apply error")

	err := tc.core.DocsSubmitted(fixtures.Bob, id)
	assert.Equal(t, fault.Unauthorized, err, "non evaluator advanced")
	assert.True(t, fault.IsErrAuthorization(err), "wrong class")
	assert.Equal(t, lifecycle.Applied, tc.core.State(id), "state changed")

	state, evaluator := tc.core.Binding(id)
	assert.Equal(t, lifecycle.Applied, state, "wrong binding state")
	assert.Equal(t, fixtures.Evaluator, evaluator, "wrong binding")
}

// approve 30, spend 25, spend 10 fails leaving 5
func TestAllowanceSpending(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix, err := tc.core.CreateType(fixtures.Creator, "gold", record.Fungible)
	assert.Nil(t, err, "create type error")
	id := prefix.Identifier()

	err = tc.core.MintFungible(fixtures.Creator, prefix, []account.Address{fixtures.Alice}, []uint64{100})
	assert.Nil(t, err, "mint error")

	assert.Nil(t, tc.core.Approve(fixtures.Alice, fixtures.Carol, id, 0, 30), "approve error")

	err = tc.core.SafeTransfer(fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 25, nil)
	assert.Nil(t, err, "first spend error")
	assert.Equal(t, uint64(5), tc.core.Allowance(fixtures.Alice, fixtures.Carol, id), "wrong allowance")

	err = tc.core.SafeTransfer(fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 10, nil)
	assert.Equal(t, fault.InsufficientAllowance, err, "overspend")
	assert.Equal(t, uint64(5), tc.core.Allowance(fixtures.Alice, fixtures.Carol, id), "allowance changed by failure")
	assert.Equal(t, uint64(75), tc.core.BalanceOf(fixtures.Alice, id), "wrong owner balance")
	assert.Equal(t, uint64(25), tc.core.BalanceOf(fixtures.Bob, id), "wrong recipient balance")

	err = tc.core.Approve(fixtures.Alice, fixtures.Carol, id, 30, 50)
	assert.Equal(t, fault.StaleAllowance, err, "stale compare accepted")
}

// drive to burn, then nothing moves the record
func TestFinalizeBurns(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	id := tc.mint(t, prefix, fixtures.Alice)

	assert.Nil(t, tc.core.Apply(fixtures.Alice, id, fixtures.Evaluator), "apply error")
	assert.Nil(t, tc.core.DocsSubmitted(fixtures.Evaluator, id), "docs submitted error")
	assert.Nil(t, tc.core.UserQualified(fixtures.Evaluator, id), "qualified error")
	assert.Nil(t, tc.core.Finalize(fixtures.Evaluator, id), "finalize error")

	for _, holder := range []account.Address{fixtures.Alice, fixtures.Bob, fixtures.Evaluator, fixtures.Escrow} {
		assert.Equal(t, uint64(0), tc.core.BalanceOf(holder, id), "balance after burn")
	}
	assert.Equal(t, lifecycle.Burned, tc.core.State(id), "not burned")
	assert.Equal(t, uint64(0), tc.core.TotalSupply(id), "supply after burn")

	err := tc.core.Apply(fixtures.Alice, id, fixtures.Evaluator)
	assert.True(t, fault.IsErrState(err) || fault.IsErrQuantity(err), "apply after burn: %v", err)

	err = tc.core.Sell(fixtures.Alice, id, account.Null, currency.Native, 10, tc.clock.Now().Add(time.Hour))
	assert.True(t, fault.IsErrState(err) || fault.IsErrQuantity(err), "sell after burn: %v", err)

	err = tc.core.SafeTransfer(fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 1, nil)
	assert.True(t, fault.IsErrState(err) || fault.IsErrQuantity(err), "transfer after burn: %v", err)

	// burned indexes are never reused
	next := tc.mint(t, prefix, fixtures.Alice)
	assert.Equal(t, id.Index()+1, next.Index(), "index reused")
}

// unapproved external asset pull leaves the option intact
func TestAssetPaymentFailureRollsBack(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	token, err := tc.core.HostAsset("X", fixtures.Creator, map[account.Address]uint64{fixtures.Bob: 100})
	assert.Nil(t, err, "host asset error")

	prefix := tc.uniqueType(t)
	id := tc.mint(t, prefix, fixtures.Alice)

	expiry := tc.clock.Now().Add(time.Hour)
	err = tc.core.Sell(fixtures.Alice, id, account.Null, token.Address(), 10, expiry)
	assert.Nil(t, err, "sell error")

	before, err := tc.core.Option(id)
	assert.Nil(t, err, "option error")

	err = tc.core.Buy(fixtures.Bob, id, token.Address(), 0)
	assert.Equal(t, fault.PaymentFailed, err, "bought without approval")

	after, err := tc.core.Option(id)
	assert.Nil(t, err, "option lost")
	assert.Equal(t, before, after, "option changed")

	owner, _ := tc.core.OwnerOf(id)
	assert.Equal(t, fixtures.Alice, owner, "ownership moved")
	balance, err := tc.core.AssetBalance(token.Address(), fixtures.Bob)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(100), balance, "buyer charged")
	assert.Equal(t, lifecycle.Optioned, tc.core.State(id), "not optioned")
}

// the failing half of an operation undoes the succeeding half
func TestRejectedReceiverRollsBack(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	prefix, err := tc.core.CreateType(fixtures.Creator, "gold", record.Fungible)
	assert.Nil(t, err, "create type error")
	id := prefix.Identifier()
	err = tc.core.MintFungible(fixtures.Creator, prefix, []account.Address{fixtures.Alice}, []uint64{100})
	assert.Nil(t, err, "mint error")

	r := mocks.NewMockReceiver(ctl)
	r.EXPECT().OnReceived(fixtures.Alice, fixtures.Alice, id, uint64(40), []byte("x")).Return(false).Times(1)
	tc.core.RegisterReceiver(fixtures.Carol, r)
	defer tc.core.UnregisterReceiver(fixtures.Carol)

	last := tc.core.LastEvent()

	err = tc.core.SafeTransfer(fixtures.Alice, fixtures.Alice, fixtures.Carol, id, 40, []byte("x"))
	assert.Equal(t, fault.TransferRejected, err, "rejection ignored")
	assert.Equal(t, uint64(100), tc.core.BalanceOf(fixtures.Alice, id), "sender debited")
	assert.Equal(t, uint64(0), tc.core.BalanceOf(fixtures.Carol, id), "receiver credited")
	assert.Equal(t, last, tc.core.LastEvent(), "events from failed operation")
}

func TestBatchTransferAllOrNothing(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	ids, err := tc.core.MintUnique(fixtures.Creator, prefix, []account.Address{fixtures.Alice, fixtures.Alice, fixtures.Bob})
	assert.Nil(t, err, "mint error")

	// the third record belongs to someone else
	err = tc.core.SafeBatchTransfer(fixtures.Alice, fixtures.Alice, fixtures.Carol, ids, []uint64{1, 1, 1}, nil)
	assert.NotNil(t, err, "batch with foreign record succeeded")

	for i, holder := range []account.Address{fixtures.Alice, fixtures.Alice, fixtures.Bob} {
		owner, _ := tc.core.OwnerOf(ids[i])
		assert.Equal(t, holder, owner, "owner changed by failed batch")
	}

	err = tc.core.SafeBatchTransfer(fixtures.Alice, fixtures.Alice, fixtures.Carol, ids[:2], []uint64{1, 1}, nil)
	assert.Nil(t, err, "batch error")
	assert.Equal(t, uint64(2), tc.core.BalanceOf(fixtures.Carol, prefix.Identifier()), "wrong type count")
}

func TestEventsArePublishedAndStored(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, err := storage.Open("")
	assert.Nil(t, err, "open error")
	defer db.Close()

	p := coremocks.NewMockPublisher(ctl)
	c, err := core.New(db, core.Options{Escrow: fixtures.Escrow, Publisher: p})
	assert.Nil(t, err, "core error")

	p.EXPECT().Publish(gomock.Any()).Do(func(events []event.Event) {
		assert.Equal(t, 1, len(events), "event count")
		assert.Equal(t, event.TypeCreated, events[0].Kind, "wrong kind")
		assert.Equal(t, uint64(1), events[0].Sequence, "wrong sequence")
	}).Times(1)

	prefix, err := c.CreateType(fixtures.Creator, "deed", record.Unique)
	assert.Nil(t, err, "create type error")

	// a failed operation publishes nothing
	_, err = c.CreateType(fixtures.Creator, "", record.Unique)
	assert.Equal(t, fault.InvalidArgument, err, "empty name accepted")

	events, err := c.Events(1, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 1, len(events), "stored event count")
	assert.Equal(t, prefix.Identifier(), events[0].Record, "wrong record")
	assert.Equal(t, uint64(1), c.LastEvent(), "wrong last event")

	// the collector of the shared setup sees its own operations
	tc.uniqueType(t)
	assert.Equal(t, 2, len(tc.published.events), "collector event count")
}

func TestQueries(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	assert.Equal(t, fixtures.Escrow, tc.core.Escrow(), "wrong escrow")
	assert.True(t, tc.core.IsTrusted(prefix, fixtures.Evaluator), "evaluator not trusted")
	assert.Equal(t, uint64(1), tc.core.NextIndex(prefix), "wrong next index")

	assert.Nil(t, tc.core.SetURI(fixtures.Creator, prefix, "https://example.com/deed"), "set uri error")
	assert.Nil(t, tc.core.SetMintApproval(fixtures.Creator, prefix, fixtures.Carol, true), "mint approval error")
	assert.True(t, tc.core.IsMintApproved(prefix, fixtures.Carol), "minter not approved")

	d, err := tc.core.Type(prefix)
	assert.Nil(t, err, "type error")
	assert.Equal(t, "deed", d.Name, "wrong name")
	assert.Equal(t, "https://example.com/deed", d.URI, "wrong uri")
	assert.Equal(t, fixtures.Creator, d.Creator, "wrong creator")

	ids, err := tc.core.MintUnique(fixtures.Carol, prefix, []account.Address{fixtures.Alice, account.Null, fixtures.Bob})
	assert.Nil(t, err, "approved minter error")
	assert.Equal(t, 3, len(ids), "result not slot aligned")
	assert.Equal(t, uint64(4), tc.core.NextIndex(prefix), "null slot did not consume an index")

	balances, err := tc.core.BalanceOfBatch([]account.Address{fixtures.Alice, fixtures.Bob}, []record.Identifier{ids[0], ids[2]})
	assert.Nil(t, err, "batch balance error")
	assert.Equal(t, []uint64{1, 1}, balances, "wrong balances")

	_, err = tc.core.BalanceOfBatch([]account.Address{fixtures.Alice}, ids)
	assert.Equal(t, fault.InvalidArgument, err, "length mismatch")

	assert.Nil(t, tc.core.SetApprovalForAll(fixtures.Alice, fixtures.Bob, true), "approval error")
	assert.True(t, tc.core.IsApprovedForAll(fixtures.Alice, fixtures.Bob), "not approved")
}

func TestCancelSaleAndRemove(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	id := tc.mint(t, prefix, fixtures.Alice)

	err := tc.core.Sell(fixtures.Alice, id, account.Null, currency.Native, 5, tc.clock.Now().Add(time.Minute))
	assert.Nil(t, err, "sell error")

	tc.clock.Advance(time.Hour)
	err = tc.core.Buy(fixtures.Bob, id, currency.Native, 5)
	assert.Equal(t, fault.OptionExpired, err, "expired option bought")

	assert.Nil(t, tc.core.CancelSale(fixtures.Alice, id), "cancel error")
	assert.Nil(t, tc.core.Apply(fixtures.Alice, id, fixtures.Evaluator), "apply error")
	assert.Nil(t, tc.core.Remove(fixtures.Alice, id), "remove error")
	assert.Nil(t, tc.core.Apply(fixtures.Alice, id, fixtures.Evaluator), "reapply error")
	assert.Nil(t, tc.core.UserRejected(fixtures.Evaluator, id), "reject error")
	assert.Equal(t, lifecycle.Available, tc.core.State(id), "not available")
}

func TestFinalizeBatch(t *testing.T) {
	tc := setup(t)
	defer tc.teardown()

	prefix := tc.uniqueType(t)
	ids, err := tc.core.MintUnique(fixtures.Creator, prefix, []account.Address{fixtures.Alice, fixtures.Bob})
	assert.Nil(t, err, "mint error")

	assert.Nil(t, tc.core.Apply(fixtures.Alice, ids[0], fixtures.Evaluator), "apply error")
	assert.Nil(t, tc.core.Apply(fixtures.Bob, ids[1], fixtures.Evaluator), "apply error")
	for _, id := range ids {
		assert.Nil(t, tc.core.DocsSubmitted(fixtures.Evaluator, id), "docs submitted error")
	}
	assert.Nil(t, tc.core.UserQualified(fixtures.Evaluator, ids[0]), "qualified error")

	// one record not yet approved fails the whole batch
	err = tc.core.FinalizeBatch(fixtures.Evaluator, ids)
	assert.Equal(t, fault.InvalidTransition, err, "partial batch accepted")
	assert.Equal(t, lifecycle.Approved, tc.core.State(ids[0]), "first record burned by failed batch")

	assert.Nil(t, tc.core.UserQualified(fixtures.Evaluator, ids[1]), "qualified error")
	assert.Nil(t, tc.core.FinalizeBatch(fixtures.Evaluator, ids), "batch error")
	assert.Equal(t, uint64(0), tc.core.TotalSupply(prefix.Identifier()), "type supply after burn")
}

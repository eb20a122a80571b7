// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ledger/mocks"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

func TestTransferUniqueByOwner(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.uniqueType(t)
	id := tl.mintUnique(t, prefix, fixtures.Alice)

	err := tl.ledger.SafeTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 1, nil)
	assert.Nil(t, err, "transfer error")

	owner, _ := tl.ledger.OwnerOf(tl.ctx, id)
	assert.Equal(t, fixtures.Bob, owner, "wrong owner")
	assert.Equal(t, uint64(0), tl.ledger.BalanceOf(tl.ctx, fixtures.Alice, prefix.Identifier()), "sender still counted")
	assert.Equal(t, uint64(1), tl.ledger.BalanceOf(tl.ctx, fixtures.Bob, prefix.Identifier()), "recipient not counted")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 1, nil)
	assert.Equal(t, fault.InsufficientBalance, err, "transfer of record no longer held")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Bob, fixtures.Bob, fixtures.Alice, id, 2, nil)
	assert.Equal(t, fault.InvalidArgument, err, "unique amount above one")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Bob, fixtures.Bob, account.Null, id, 1, nil)
	assert.Equal(t, fault.NullAddress, err, "transfer to null")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Bob, fixtures.Bob, fixtures.Alice, prefix.Identifier(), 1, nil)
	assert.Equal(t, fault.InvalidArgument, err, "transfer of type descriptor")
}

func TestTransferByOperator(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.fungibleType(t)
	id := prefix.Identifier()
	tl.mintFungible(t, prefix, fixtures.Alice, 100)

	err := tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 10, nil)
	assert.Equal(t, fault.InsufficientAllowance, err, "stranger transferred")

	_ = tl.ledger.SetApprovalForAll(tl.ctx, fixtures.Alice, fixtures.Carol, true)
	_ = tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Carol, id, 0, 20)

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 50, nil)
	assert.Nil(t, err, "operator transfer error")
	assert.Equal(t, uint64(50), tl.ledger.BalanceOf(tl.ctx, fixtures.Bob, id), "wrong recipient balance")
	assert.Equal(t, uint64(20), tl.ledger.Allowance(tl.ctx, fixtures.Alice, fixtures.Carol, id), "operator transfer consumed allowance")

	// approval is one way
	assert.False(t, tl.ledger.IsApprovedForAll(tl.ctx, fixtures.Carol, fixtures.Alice), "approval is symmetric")

	_ = tl.ledger.SetApprovalForAll(tl.ctx, fixtures.Alice, fixtures.Carol, false)
	assert.False(t, tl.ledger.IsApprovedForAll(tl.ctx, fixtures.Alice, fixtures.Carol), "approval not revoked")
}

// approve 30, spend 25, spend 10 fails, 5 remains
func TestTransferByAllowance(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.fungibleType(t)
	id := prefix.Identifier()
	tl.mintFungible(t, prefix, fixtures.Alice, 100)

	err := tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Carol, id, 0, 30)
	assert.Nil(t, err, "approve error")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 25, nil)
	assert.Nil(t, err, "allowance transfer error")
	assert.Equal(t, uint64(5), tl.ledger.Allowance(tl.ctx, fixtures.Alice, fixtures.Carol, id), "wrong remaining allowance")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 10, nil)
	assert.Equal(t, fault.InsufficientAllowance, err, "transfer beyond allowance")
	assert.Equal(t, uint64(5), tl.ledger.Allowance(tl.ctx, fixtures.Alice, fixtures.Carol, id), "failed transfer changed allowance")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 5, nil)
	assert.Nil(t, err, "transfer of exact remainder")
	assert.Equal(t, uint64(0), tl.ledger.Allowance(tl.ctx, fixtures.Alice, fixtures.Carol, id), "allowance not exhausted")
	assert.Equal(t, uint64(30), tl.ledger.BalanceOf(tl.ctx, fixtures.Bob, id), "wrong recipient balance")
	assert.Equal(t, uint64(70), tl.ledger.BalanceOf(tl.ctx, fixtures.Alice, id), "wrong sender balance")
}

func TestApproveStale(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.uniqueType(t)
	id := tl.mintUnique(t, prefix, fixtures.Alice)

	err := tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Bob, id, 0, 1)
	assert.Nil(t, err, "approve error")

	err = tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Bob, id, 0, 5)
	assert.Equal(t, fault.StaleAllowance, err, "stale previous accepted")
	assert.Equal(t, uint64(1), tl.ledger.Allowance(tl.ctx, fixtures.Alice, fixtures.Bob, id), "stale approve changed allowance")

	err = tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Bob, id, 1, 0)
	assert.Nil(t, err, "reset error")

	err = tl.ledger.Approve(tl.ctx, fixtures.Alice, account.Null, id, 0, 1)
	assert.Equal(t, fault.NullAddress, err, "null spender allowed")

	err = tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Bob, record.Identifier(0x0000009900000000), 0, 1)
	assert.Equal(t, fault.UnknownType, err, "unknown record allowed")
}

func TestTransferUniqueByAllowance(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.uniqueType(t)
	id := tl.mintUnique(t, prefix, fixtures.Alice)

	_ = tl.ledger.Approve(tl.ctx, fixtures.Alice, fixtures.Carol, id, 0, 1)

	err := tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Carol, id, 1, nil)
	assert.Nil(t, err, "allowance transfer error")

	owner, _ := tl.ledger.OwnerOf(tl.ctx, id)
	assert.Equal(t, fixtures.Carol, owner, "wrong owner")
	assert.Equal(t, uint64(0), tl.ledger.Allowance(tl.ctx, fixtures.Alice, fixtures.Carol, id), "allowance not consumed")
}

func TestTransferLocked(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.uniqueType(t)
	id := tl.mintUnique(t, prefix, fixtures.Alice)

	tl.ledger.SetLockCheck(func(rd storage.Reader, locked record.Identifier) bool {
		return locked == id
	})

	err := tl.ledger.SafeTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 1, nil)
	assert.Equal(t, fault.RecordLocked, err, "locked record transferred")

	err = tl.ledger.Deliver(tl.ctx, fixtures.Escrow, fixtures.Alice, fixtures.Bob, id, nil)
	assert.Nil(t, err, "deliver bypassing lock failed")
}

func TestBalanceOfBatch(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.fungibleType(t)
	id := prefix.Identifier()
	tl.mintFungible(t, prefix, fixtures.Alice, 7)
	tl.mintFungible(t, prefix, fixtures.Bob, 3)

	balances, err := tl.ledger.BalanceOfBatch(tl.ctx,
		[]account.Address{fixtures.Alice, fixtures.Bob, fixtures.Carol},
		[]record.Identifier{id, id, id})
	assert.Nil(t, err, "batch error")
	assert.Equal(t, []uint64{7, 3, 0}, balances, "wrong balances")

	_, err = tl.ledger.BalanceOfBatch(tl.ctx, []account.Address{fixtures.Alice}, []record.Identifier{id, id})
	assert.Equal(t, fault.InvalidArgument, err, "length mismatch allowed")
}

func TestReceiverHook(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	component := account.NewAddress("vault")
	r := mocks.NewMockReceiver(ctl)
	tl.ledger.RegisterReceiver(component, r)

	prefix := tl.uniqueType(t)
	first := tl.mintUnique(t, prefix, fixtures.Alice)
	second := tl.mintUnique(t, prefix, fixtures.Alice)

	data := []byte("memo")
	r.EXPECT().OnReceived(fixtures.Alice, fixtures.Alice, first, uint64(1), data).Return(false).Times(1)
	r.EXPECT().OnReceived(fixtures.Alice, fixtures.Alice, second, uint64(1), data).Return(true).Times(1)

	err := tl.ledger.SafeTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, component, first, 1, data)
	assert.Equal(t, fault.TransferRejected, err, "rejection ignored")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, component, second, 1, data)
	assert.Nil(t, err, "accepted transfer failed")

	tl.ledger.UnregisterReceiver(component)
}

func TestBatchTransferSkipsNull(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	component := account.NewAddress("vault")
	r := mocks.NewMockReceiver(ctl)
	tl.ledger.RegisterReceiver(component, r)

	unique := tl.uniqueType(t)
	fungible := tl.fungibleType(t)
	id := tl.mintUnique(t, unique, fixtures.Alice)
	tl.mintFungible(t, fungible, fixtures.Alice, 40)

	ids := []record.Identifier{id, 0, fungible.Identifier()}
	amounts := []uint64{1, 99, 15}

	r.EXPECT().OnBatchReceived(fixtures.Alice, fixtures.Alice,
		[]record.Identifier{id, fungible.Identifier()}, []uint64{1, 15}, []byte(nil)).Return(true).Times(1)

	err := tl.ledger.SafeBatchTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, component, ids, amounts, nil)
	assert.Nil(t, err, "batch transfer error")
	assert.Equal(t, uint64(25), tl.ledger.BalanceOf(tl.ctx, fixtures.Alice, fungible.Identifier()), "wrong remaining balance")

	err = tl.ledger.SafeBatchTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, ids, amounts[:2], nil)
	assert.Equal(t, fault.InvalidArgument, err, "length mismatch allowed")
}

// a zero amount moves nothing and must not pass as an authorised transfer
func TestTransferZeroAmount(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.fungibleType(t)
	id := prefix.Identifier()
	tl.mintFungible(t, prefix, fixtures.Alice, 100)
	before := len(tl.ctx.Events())

	err := tl.ledger.SafeTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, id, 0, nil)
	assert.Equal(t, fault.InvalidArgument, err, "zero transfer by stranger accepted")

	err = tl.ledger.SafeTransfer(tl.ctx, fixtures.Alice, fixtures.Alice, fixtures.Bob, id, 0, nil)
	assert.Equal(t, fault.InvalidArgument, err, "zero transfer by owner accepted")
	assert.Equal(t, before, len(tl.ctx.Events()), "event emitted for zero transfer")

	err = tl.ledger.SafeBatchTransfer(tl.ctx, fixtures.Carol, fixtures.Alice, fixtures.Bob, []record.Identifier{id}, []uint64{0}, nil)
	assert.Nil(t, err, "zero batch entry not skipped")
	assert.Equal(t, before, len(tl.ctx.Events()), "event emitted for skipped entry")
	assert.Equal(t, uint64(100), tl.ledger.BalanceOf(tl.ctx, fixtures.Alice, id), "balance changed")
}

func TestBurnConservation(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	prefix := tl.uniqueType(t)
	first := tl.mintUnique(t, prefix, fixtures.Alice)
	tl.mintUnique(t, prefix, fixtures.Bob)

	err := tl.ledger.Burn(tl.ctx, fixtures.Evaluator, first)
	assert.Nil(t, err, "burn error")

	assert.Equal(t, uint64(0), tl.ledger.BalanceOf(tl.ctx, fixtures.Alice, first), "burned balance remains")
	assert.Equal(t, uint64(0), tl.ledger.TotalSupply(tl.ctx, first), "burned supply remains")
	assert.Equal(t, uint64(1), tl.ledger.TotalSupply(tl.ctx, prefix.Identifier()), "wrong type supply")

	holders := tl.ledger.BalanceOf(tl.ctx, fixtures.Alice, prefix.Identifier()) + tl.ledger.BalanceOf(tl.ctx, fixtures.Bob, prefix.Identifier())
	assert.Equal(t, tl.ledger.TotalSupply(tl.ctx, prefix.Identifier()), holders, "supply does not match holdings")

	err = tl.ledger.Burn(tl.ctx, fixtures.Evaluator, first)
	assert.Equal(t, fault.InsufficientBalance, err, "double burn")
}

func TestNativeValue(t *testing.T) {
	tl := setup(t)
	defer tl.teardown()

	err := tl.ledger.Deposit(tl.ctx, fixtures.Bob, 50)
	assert.Nil(t, err, "deposit error")
	assert.Equal(t, uint64(50), tl.ledger.NativeBalance(tl.ctx, fixtures.Bob), "wrong deposit")

	assert.Equal(t, fault.InsufficientBalance, tl.ledger.DebitNative(tl.ctx, fixtures.Bob, 51), "overdraft allowed")
	assert.Nil(t, tl.ledger.DebitNative(tl.ctx, fixtures.Bob, 20), "debit error")
	assert.Nil(t, tl.ledger.CreditNative(tl.ctx, fixtures.Alice, 20), "credit error")
	assert.Equal(t, uint64(30), tl.ledger.NativeBalance(tl.ctx, fixtures.Bob), "wrong debit")
	assert.Equal(t, uint64(20), tl.ledger.NativeBalance(tl.ctx, fixtures.Alice), "wrong credit")

	assert.Equal(t, fault.NullAddress, tl.ledger.Deposit(tl.ctx, account.Null, 1), "null deposit allowed")
}

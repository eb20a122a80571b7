// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/txn"
)

// SetApprovalForAll - grant or revoke full transfer rights
func (l *Ledger) SetApprovalForAll(ctx *txn.Context, caller account.Address, operator account.Address, approved bool) error {
	if operator.IsNull() {
		return fault.NullAddress
	}

	key := operatorKey(caller, operator)
	if approved {
		ctx.Put(l.pools.Operators, key, []byte{1})
	} else {
		ctx.Delete(l.pools.Operators, key)
	}

	ctx.Emit(event.Event{
		Kind:     event.ApprovalChanged,
		Operator: operator,
		From:     caller,
		Approved: approved,
	})
	return nil
}

// Approve - compare and swap the caller's allowance for spender
//
// fails with StaleAllowance if the current remaining amount is not
// previous, leaving the allowance untouched
func (l *Ledger) Approve(ctx *txn.Context, caller account.Address, spender account.Address, id record.Identifier, previous uint64, amount uint64) error {
	if spender.IsNull() {
		return fault.NullAddress
	}
	if _, err := l.Descriptor(ctx, id); nil != err {
		return err
	}

	key := allowanceKey(caller, spender, id)
	current, _ := ctx.GetN(l.pools.Allowances, key)
	if current != previous {
		return fault.StaleAllowance
	}

	if 0 == amount {
		ctx.Delete(l.pools.Allowances, key)
	} else {
		ctx.PutN(l.pools.Allowances, key, amount)
	}

	ctx.Emit(event.Event{
		Kind:     event.AllowanceSet,
		Record:   id,
		Operator: spender,
		From:     caller,
		Amount:   amount,
	})

	l.log.Debugf("approve: %s  owner: %s  spender: %s  %d -> %d", id, caller, spender, previous, amount)
	return nil
}

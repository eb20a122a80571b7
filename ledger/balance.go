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
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// add to an N value, a zero result removes the key
func adjust(ctx *txn.Context, pool *storage.PoolHandle, key []byte, increase uint64, decrease uint64) error {
	n, _ := ctx.GetN(pool, key)
	if n < decrease {
		return fault.InsufficientBalance
	}
	n -= decrease
	if n+increase < n {
		return fault.Overflow
	}
	n += increase

	if 0 == n {
		ctx.Delete(pool, key)
	} else {
		ctx.PutN(pool, key, n)
	}
	return nil
}

func (l *Ledger) credit(ctx *txn.Context, holder account.Address, id record.Identifier, amount uint64) error {
	err := adjust(ctx, l.pools.Balances, balanceKey(holder, id), amount, 0)
	if nil != err {
		return err
	}
	if id.IsUniqueInstance() {
		ctx.Put(l.pools.Owners, id.Bytes(), holder.Bytes())
		return adjust(ctx, l.pools.Balances, balanceKey(holder, id.Prefix().Identifier()), 1, 0)
	}
	return nil
}

func (l *Ledger) debit(ctx *txn.Context, holder account.Address, id record.Identifier, amount uint64) error {
	err := adjust(ctx, l.pools.Balances, balanceKey(holder, id), 0, amount)
	if nil != err {
		return err
	}
	if id.IsUniqueInstance() {
		ctx.Delete(l.pools.Owners, id.Bytes())
		return adjust(ctx, l.pools.Balances, balanceKey(holder, id.Prefix().Identifier()), 0, 1)
	}
	return nil
}

// issue new units and account for them in the supply
func (l *Ledger) issue(ctx *txn.Context, holder account.Address, id record.Identifier, amount uint64) error {
	err := adjust(ctx, l.pools.Supply, id.Bytes(), amount, 0)
	if nil != err {
		return err
	}
	if id.IsUniqueInstance() {
		err = adjust(ctx, l.pools.Supply, id.Prefix().Identifier().Bytes(), 1, 0)
		if nil != err {
			return err
		}
	}
	return l.credit(ctx, holder, id, amount)
}

// Move - transfer a balance without authorisation or lock checks
//
// used directly by escrow settlement, which has already established
// that the move is allowed
func (l *Ledger) Move(ctx *txn.Context, operator account.Address, from account.Address, to account.Address, id record.Identifier, amount uint64) error {
	if from.IsNull() || to.IsNull() {
		return fault.NullAddress
	}

	err := l.debit(ctx, from, id, amount)
	if nil != err {
		return err
	}
	err = l.credit(ctx, to, id, amount)
	if nil != err {
		return err
	}

	ctx.Emit(event.Event{
		Kind:     event.Transfer,
		Record:   id,
		Operator: operator,
		From:     from,
		To:       to,
		Amount:   amount,
	})

	l.log.Debugf("move: %s  amount: %d  from: %s  to: %s", id, amount, from, to)
	return nil
}

// Burn - destroy a unique record held by its owner
func (l *Ledger) Burn(ctx *txn.Context, operator account.Address, id record.Identifier) error {
	if !id.IsUniqueInstance() {
		return fault.InvalidArgument
	}
	owner, ok := l.OwnerOf(ctx, id)
	if !ok {
		return fault.InsufficientBalance
	}

	err := l.debit(ctx, owner, id, 1)
	if nil != err {
		return err
	}
	err = adjust(ctx, l.pools.Supply, id.Bytes(), 0, 1)
	if nil != err {
		return err
	}
	err = adjust(ctx, l.pools.Supply, id.Prefix().Identifier().Bytes(), 0, 1)
	if nil != err {
		return err
	}

	ctx.Emit(event.Event{
		Kind:     event.Transfer,
		Record:   id,
		Operator: operator,
		From:     owner,
		To:       account.Null,
		Amount:   1,
	})

	l.log.Debugf("burn: %s  owner: %s", id, owner)
	return nil
}

// Deposit - add native value to an account
func (l *Ledger) Deposit(ctx *txn.Context, holder account.Address, amount uint64) error {
	if holder.IsNull() {
		return fault.NullAddress
	}
	err := l.CreditNative(ctx, holder, amount)
	if nil != err {
		return err
	}

	ctx.Emit(event.Event{
		Kind:   event.Deposited,
		To:     holder,
		Amount: amount,
	})
	return nil
}

// CreditNative - add native value
func (l *Ledger) CreditNative(ctx *txn.Context, holder account.Address, amount uint64) error {
	return adjust(ctx, l.pools.NativeBalances, holder.Bytes(), amount, 0)
}

// DebitNative - remove native value
func (l *Ledger) DebitNative(ctx *txn.Context, holder account.Address, amount uint64) error {
	return adjust(ctx, l.pools.NativeBalances, holder.Bytes(), 0, amount)
}

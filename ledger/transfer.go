// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/txn"
)

// SafeTransfer - move amount of a record and notify a component recipient
func (l *Ledger) SafeTransfer(ctx *txn.Context, caller account.Address, from account.Address, to account.Address, id record.Identifier, amount uint64, data []byte) error {
	err := l.transfer(ctx, caller, from, to, id, amount)
	if nil != err {
		return err
	}
	return l.notify(caller, from, to, id, amount, data)
}

// SafeBatchTransfer - parallel array form of SafeTransfer
//
// null identifiers and zero amounts are skipped; the recipient hook
// sees the remaining entries in one call
func (l *Ledger) SafeBatchTransfer(ctx *txn.Context, caller account.Address, from account.Address, to account.Address, ids []record.Identifier, amounts []uint64, data []byte) error {
	if len(ids) != len(amounts) || len(ids) > MaximumBatchSize {
		return fault.InvalidArgument
	}

	movedIds := make([]record.Identifier, 0, len(ids))
	movedAmounts := make([]uint64, 0, len(ids))
	for i, id := range ids {
		if id.IsNull() || 0 == amounts[i] {
			continue
		}
		err := l.transfer(ctx, caller, from, to, id, amounts[i])
		if nil != err {
			return err
		}
		movedIds = append(movedIds, id)
		movedAmounts = append(movedAmounts, amounts[i])
	}

	if 0 == len(movedIds) {
		return nil
	}
	return l.notifyBatch(caller, from, to, movedIds, movedAmounts, data)
}

// Deliver - move a unique record without authorisation or lock checks
// and notify a component recipient
func (l *Ledger) Deliver(ctx *txn.Context, operator account.Address, from account.Address, to account.Address, id record.Identifier, data []byte) error {
	err := l.Move(ctx, operator, from, to, id, 1)
	if nil != err {
		return err
	}
	return l.notify(operator, from, to, id, 1, data)
}

func (l *Ledger) transfer(ctx *txn.Context, caller account.Address, from account.Address, to account.Address, id record.Identifier, amount uint64) error {
	if from.IsNull() || to.IsNull() {
		return fault.NullAddress
	}
	if 0 == amount {
		return fault.InvalidArgument
	}

	d, err := l.Descriptor(ctx, id)
	if nil != err {
		return err
	}
	if record.Unique == d.Kind {
		if 1 != amount {
			return fault.InvalidArgument
		}
		if l.isLocked(ctx, id) {
			return fault.RecordLocked
		}
	}

	if caller != from && !l.IsApprovedForAll(ctx, from, caller) {
		key := allowanceKey(from, caller, id)
		remaining, _ := ctx.GetN(l.pools.Allowances, key)
		if remaining < amount {
			return fault.InsufficientAllowance
		}
		if remaining == amount {
			ctx.Delete(l.pools.Allowances, key)
		} else {
			ctx.PutN(l.pools.Allowances, key, remaining-amount)
		}
	}

	return l.Move(ctx, caller, from, to, id, amount)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

// BalanceOf - quantity of a record held
func (l *Ledger) BalanceOf(rd storage.Reader, holder account.Address, id record.Identifier) uint64 {
	n, _ := rd.GetN(l.pools.Balances, balanceKey(holder, id))
	return n
}

// BalanceOfBatch - parallel array form of BalanceOf
func (l *Ledger) BalanceOfBatch(rd storage.Reader, holders []account.Address, ids []record.Identifier) ([]uint64, error) {
	if len(holders) != len(ids) {
		return nil, fault.InvalidArgument
	}
	balances := make([]uint64, len(ids))
	for i, id := range ids {
		balances[i] = l.BalanceOf(rd, holders[i], id)
	}
	return balances, nil
}

// OwnerOf - current holder of a unique record
func (l *Ledger) OwnerOf(rd storage.Reader, id record.Identifier) (account.Address, bool) {
	buffer := rd.Get(l.pools.Owners, id.Bytes())
	if nil == buffer {
		return account.Null, false
	}
	owner, err := account.AddressFromBytes(buffer)
	if nil != err {
		return account.Null, false
	}
	return owner, true
}

// TotalSupply - minted less burned
//
// for a unique type descriptor this is the number of live instances
func (l *Ledger) TotalSupply(rd storage.Reader, id record.Identifier) uint64 {
	n, _ := rd.GetN(l.pools.Supply, id.Bytes())
	return n
}

// IsApprovedForAll - operator approval lookup
func (l *Ledger) IsApprovedForAll(rd storage.Reader, owner account.Address, operator account.Address) bool {
	return rd.Has(l.pools.Operators, operatorKey(owner, operator))
}

// Allowance - remaining amount spender may move
func (l *Ledger) Allowance(rd storage.Reader, owner account.Address, spender account.Address, id record.Identifier) uint64 {
	n, _ := rd.GetN(l.pools.Allowances, allowanceKey(owner, spender, id))
	return n
}

// NativeBalance - native value held
func (l *Ledger) NativeBalance(rd storage.Reader, holder account.Address) uint64 {
	n, _ := rd.GetN(l.pools.NativeBalances, holder.Bytes())
	return n
}

// Descriptor - validate a record identifier against its type
//
// fungible records only exist at the descriptor identifier and unique
// records only at a non-zero index
func (l *Ledger) Descriptor(rd storage.Reader, id record.Identifier) (*record.Descriptor, error) {
	if id.IsNull() {
		return nil, fault.InvalidArgument
	}
	d, err := l.registry.Descriptor(rd, id.Prefix())
	if nil != err {
		return nil, err
	}
	if (record.Unique == d.Kind) == id.IsDescriptor() {
		return nil, fault.InvalidArgument
	}
	return d, nil
}

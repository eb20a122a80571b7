// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fungible - an in-process fungible asset usable as an
// escrow settlement currency
//
// balances, allowances and supply are kept in the ledger database,
// keyed by the asset address, and every change is written through the
// transaction of the operation that makes it
package fungible

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Handles - storage pools shared by all hosted assets
type Handles struct {
	Balances   *storage.PoolHandle
	Allowances *storage.PoolHandle
	Supply     *storage.PoolHandle
}

// Token - one asset
type Token struct {
	log     *logger.L
	pools   Handles
	address account.Address
	symbol  string
	owner   account.Address
}

// Address - the address of the asset with a symbol
func Address(symbol string) account.Address {
	return account.NewAddress("asset:" + symbol)
}

// New - create an asset whose address is derived from its symbol
func New(log *logger.L, pools Handles, symbol string, owner account.Address) *Token {
	return &Token{
		log:     log,
		pools:   pools,
		address: Address(symbol),
		symbol:  symbol,
		owner:   owner,
	}
}

// Address - identity of the asset
func (t *Token) Address() account.Address {
	return t.address
}

// Symbol - short name
func (t *Token) Symbol() string {
	return t.symbol
}

// key layouts:
//   balance:   asset ‖ holder
//   allowance: asset ‖ owner ‖ spender
//   supply:    asset
func (t *Token) balanceKey(holder account.Address) []byte {
	key := make([]byte, 0, 2*account.AddressLength)
	key = append(key, t.address[:]...)
	return append(key, holder[:]...)
}

func (t *Token) allowanceKey(owner account.Address, spender account.Address) []byte {
	key := make([]byte, 0, 3*account.AddressLength)
	key = append(key, t.address[:]...)
	key = append(key, owner[:]...)
	return append(key, spender[:]...)
}

// IsInitialised - true once the asset has been recorded in the database
func (t *Token) IsInitialised(rd storage.Reader) bool {
	return rd.Has(t.pools.Supply, t.address[:])
}

// Initialise - record the asset and mint its opening allocations
//
// an asset already recorded is left unchanged so the allocations are
// only ever made once; returns true if they were made now
func (t *Token) Initialise(ctx *txn.Context, allocations map[account.Address]uint64) (bool, error) {
	if t.IsInitialised(ctx) {
		return false, nil
	}
	ctx.PutN(t.pools.Supply, t.address[:], 0)

	holders := make([]account.Address, 0, len(allocations))
	for holder := range allocations {
		holders = append(holders, holder)
	}
	sort.Slice(holders, func(i, j int) bool {
		return bytes.Compare(holders[i][:], holders[j][:]) < 0
	})

	for _, holder := range holders {
		err := t.Mint(ctx, t.owner, holder, allocations[holder])
		if nil != err {
			return false, err
		}
	}

	t.log.Infof("%s: initialised  holders: %d", t.symbol, len(holders))
	return true, nil
}

// TotalSupply - everything minted
func (t *Token) TotalSupply(rd storage.Reader) uint64 {
	supply, _ := rd.GetN(t.pools.Supply, t.address[:])
	return supply
}

// Mint - create new units, owner only
func (t *Token) Mint(ctx *txn.Context, caller account.Address, to account.Address, amount uint64) error {
	if caller != t.owner {
		return fault.Forbidden
	}
	if to.IsNull() {
		return fault.NullAddress
	}

	supply, _ := ctx.GetN(t.pools.Supply, t.address[:])
	if supply+amount < supply {
		return fault.Overflow
	}
	err := adjust(ctx, t.pools.Balances, t.balanceKey(to), amount, 0)
	if nil != err {
		return err
	}
	ctx.PutN(t.pools.Supply, t.address[:], supply+amount)

	t.log.Debugf("%s: mint: %d to: %s", t.symbol, amount, to)
	return nil
}

// BalanceOf - units held
func (t *Token) BalanceOf(rd storage.Reader, holder account.Address) uint64 {
	balance, _ := rd.GetN(t.pools.Balances, t.balanceKey(holder))
	return balance
}

// Transfer - move units from the caller
func (t *Token) Transfer(ctx *txn.Context, caller account.Address, to account.Address, amount uint64) error {
	return t.move(ctx, caller, to, amount)
}

// Approve - set the amount spender may move on the caller's behalf
func (t *Token) Approve(ctx *txn.Context, caller account.Address, spender account.Address, amount uint64) error {
	if spender.IsNull() {
		return fault.NullAddress
	}

	key := t.allowanceKey(caller, spender)
	if 0 == amount {
		ctx.Delete(t.pools.Allowances, key)
	} else {
		ctx.PutN(t.pools.Allowances, key, amount)
	}

	t.log.Debugf("%s: approve: %d owner: %s spender: %s", t.symbol, amount, caller, spender)
	return nil
}

// Allowance - remaining delegated amount
func (t *Token) Allowance(rd storage.Reader, owner account.Address, spender account.Address) uint64 {
	remaining, _ := rd.GetN(t.pools.Allowances, t.allowanceKey(owner, spender))
	return remaining
}

// TransferFrom - caller moves units from owner using its allowance
func (t *Token) TransferFrom(ctx *txn.Context, caller account.Address, owner account.Address, to account.Address, amount uint64) error {
	key := t.allowanceKey(owner, caller)
	remaining, _ := ctx.GetN(t.pools.Allowances, key)
	if remaining < amount {
		return fault.InsufficientAllowance
	}

	err := t.move(ctx, owner, to, amount)
	if nil != err {
		return err
	}

	if remaining == amount {
		ctx.Delete(t.pools.Allowances, key)
	} else {
		ctx.PutN(t.pools.Allowances, key, remaining-amount)
	}
	return nil
}

func (t *Token) move(ctx *txn.Context, from account.Address, to account.Address, amount uint64) error {
	if to.IsNull() {
		return fault.NullAddress
	}
	if t.BalanceOf(ctx, from) < amount {
		return fault.InsufficientBalance
	}
	if from == to {
		return nil
	}

	err := adjust(ctx, t.pools.Balances, t.balanceKey(from), 0, amount)
	if nil != err {
		return err
	}
	err = adjust(ctx, t.pools.Balances, t.balanceKey(to), amount, 0)
	if nil != err {
		return err
	}

	t.log.Debugf("%s: transfer: %d from: %s to: %s", t.symbol, amount, from, to)
	return nil
}

// a zero result removes the key
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

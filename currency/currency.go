// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/asset.go -package=mocks github.com/bitmark-inc/registryd/currency Asset

// Package currency - settlement currencies for the escrow
//
// a currency is either the native value marker (the null address) or
// the address of an external fungible asset
package currency

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Native - marker for settlement in native value
var Native = account.Null

// IsNative - true for the native marker
func IsNative(c account.Address) bool {
	return c.IsNull()
}

// Asset - an external fungible asset with delegated transfers
//
// caller is the identity performing each call.  Changes are written
// through the operation's transaction so that they commit or abort
// together with the ledger.
type Asset interface {
	Address() account.Address
	TotalSupply(rd storage.Reader) uint64
	BalanceOf(rd storage.Reader, holder account.Address) uint64
	Allowance(rd storage.Reader, owner account.Address, spender account.Address) uint64
	Transfer(ctx *txn.Context, caller account.Address, to account.Address, amount uint64) error
	Approve(ctx *txn.Context, caller account.Address, spender account.Address, amount uint64) error
	TransferFrom(ctx *txn.Context, caller account.Address, owner account.Address, to account.Address, amount uint64) error
}

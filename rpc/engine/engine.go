// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the registry operations reachable over RPC
package engine

//go:generate mockgen -destination=../mocks/engine.go -package=mocks github.com/bitmark-inc/registryd/rpc/engine Engine

import (
	"time"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/escrow"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
)

// Engine - implemented by core.Core
type Engine interface {
	CreateType(caller account.Address, name string, kind record.Kind) (record.Prefix, error)
	SetURI(caller account.Address, prefix record.Prefix, uri string) error
	SetMintApproval(caller account.Address, prefix record.Prefix, minter account.Address, allowed bool) error
	TrustEvaluator(caller account.Address, prefix record.Prefix, evaluator account.Address, trusted bool) error
	Type(prefix record.Prefix) (*record.Descriptor, error)
	NextIndex(prefix record.Prefix) uint64
	IsMintApproved(prefix record.Prefix, minter account.Address) bool
	IsTrusted(prefix record.Prefix, evaluator account.Address) bool

	MintUnique(caller account.Address, prefix record.Prefix, recipients []account.Address) ([]record.Identifier, error)
	MintFungible(caller account.Address, prefix record.Prefix, recipients []account.Address, amounts []uint64) error
	SetApprovalForAll(caller account.Address, operator account.Address, approved bool) error
	Approve(caller account.Address, spender account.Address, id record.Identifier, previous uint64, amount uint64) error
	SafeTransfer(caller account.Address, from account.Address, to account.Address, id record.Identifier, amount uint64, data []byte) error
	SafeBatchTransfer(caller account.Address, from account.Address, to account.Address, ids []record.Identifier, amounts []uint64, data []byte) error
	Deposit(holder account.Address, amount uint64) error
	BalanceOfBatch(holders []account.Address, ids []record.Identifier) ([]uint64, error)
	OwnerOf(id record.Identifier) (account.Address, bool)
	TotalSupply(id record.Identifier) uint64
	IsApprovedForAll(owner account.Address, operator account.Address) bool
	Allowance(owner account.Address, spender account.Address, id record.Identifier) uint64
	NativeBalance(holder account.Address) uint64

	Apply(caller account.Address, id record.Identifier, evaluator account.Address) error
	Remove(caller account.Address, id record.Identifier) error
	DocsSubmitted(caller account.Address, id record.Identifier) error
	UserQualified(caller account.Address, id record.Identifier) error
	UserRejected(caller account.Address, id record.Identifier) error
	Finalize(caller account.Address, id record.Identifier) error
	FinalizeBatch(caller account.Address, ids []record.Identifier) error
	State(id record.Identifier) lifecycle.State
	Binding(id record.Identifier) (lifecycle.State, account.Address)

	Escrow() account.Address
	Sell(caller account.Address, id record.Identifier, buyer account.Address, currency account.Address, price uint64, expires time.Time) error
	CancelSale(caller account.Address, id record.Identifier) error
	Buy(caller account.Address, id record.Identifier, currency account.Address, value uint64) error
	Option(id record.Identifier) (*escrow.Option, error)

	Events(start uint64, count int) ([]event.Event, error)
	LastEvent() uint64
}

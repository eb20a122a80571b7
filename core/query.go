// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/escrow"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

// reads see committed state only and hold the read lock so that no
// commit lands part way through a multi-key read

// Escrow - identity of the exchange
func (c *Core) Escrow() account.Address {
	return c.exchange.Address()
}

// Type - the descriptor of a type
func (c *Core) Type(prefix record.Prefix) (*record.Descriptor, error) {
	c.RLock()
	defer c.RUnlock()
	return c.registry.Descriptor(storage.Committed, prefix)
}

// NextIndex - the index the next mint of a unique type will use
func (c *Core) NextIndex(prefix record.Prefix) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.registry.NextIndex(storage.Committed, prefix)
}

// IsMintApproved - check a minting authorisation
func (c *Core) IsMintApproved(prefix record.Prefix, minter account.Address) bool {
	c.RLock()
	defer c.RUnlock()
	return c.registry.IsMintApproved(storage.Committed, prefix, minter)
}

// IsTrusted - check an evaluator against a type
func (c *Core) IsTrusted(prefix record.Prefix, evaluator account.Address) bool {
	c.RLock()
	defer c.RUnlock()
	return c.machine.IsTrusted(storage.Committed, prefix, evaluator)
}

// BalanceOf - quantity held
func (c *Core) BalanceOf(holder account.Address, id record.Identifier) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.BalanceOf(storage.Committed, holder, id)
}

// BalanceOfBatch - quantities for parallel lists
func (c *Core) BalanceOfBatch(holders []account.Address, ids []record.Identifier) ([]uint64, error) {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.BalanceOfBatch(storage.Committed, holders, ids)
}

// OwnerOf - holder of a unique record
func (c *Core) OwnerOf(id record.Identifier) (account.Address, bool) {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.OwnerOf(storage.Committed, id)
}

// TotalSupply - minted less burned
func (c *Core) TotalSupply(id record.Identifier) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.TotalSupply(storage.Committed, id)
}

// IsApprovedForAll - operator check
func (c *Core) IsApprovedForAll(owner account.Address, operator account.Address) bool {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.IsApprovedForAll(storage.Committed, owner, operator)
}

// Allowance - remaining delegated quantity
func (c *Core) Allowance(owner account.Address, spender account.Address, id record.Identifier) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.Allowance(storage.Committed, owner, spender, id)
}

// NativeBalance - native purse
func (c *Core) NativeBalance(holder account.Address) uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.ledger.NativeBalance(storage.Committed, holder)
}

// State - lifecycle state including the sale overlay
func (c *Core) State(id record.Identifier) lifecycle.State {
	c.RLock()
	defer c.RUnlock()
	return c.machine.State(storage.Committed, id)
}

// Binding - base state and bound evaluator
func (c *Core) Binding(id record.Identifier) (lifecycle.State, account.Address) {
	c.RLock()
	defer c.RUnlock()
	return c.machine.Binding(storage.Committed, id)
}

// Held - applications of a type bound to an evaluator
func (c *Core) Held(prefix record.Prefix, evaluator account.Address) ([]lifecycle.Application, error) {
	c.RLock()
	defer c.RUnlock()
	return c.machine.Held(prefix, evaluator)
}

// Option - outstanding listing
func (c *Core) Option(id record.Identifier) (*escrow.Option, error) {
	c.RLock()
	defer c.RUnlock()
	return c.exchange.OptionOf(storage.Committed, id)
}

// Events - committed events from start onwards
func (c *Core) Events(start uint64, count int) ([]event.Event, error) {
	c.RLock()
	defer c.RUnlock()
	return event.List(c.db.Pool.Events, start, count)
}

// LastEvent - sequence number of the latest event
func (c *Core) LastEvent() uint64 {
	c.RLock()
	defer c.RUnlock()
	return event.Last(c.db.Pool.Globals)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/txn"
)

// CreateType - new type descriptor owned by caller
func (c *Core) CreateType(caller account.Address, name string, kind record.Kind) (record.Prefix, error) {
	var prefix record.Prefix
	err := c.execute("create_type", func(ctx *txn.Context) error {
		var err error
		prefix, err = c.registry.CreateType(ctx, caller, name, kind)
		return err
	})
	return prefix, err
}

// SetURI - creator replaces the metadata URI
func (c *Core) SetURI(caller account.Address, prefix record.Prefix, uri string) error {
	return c.execute("set_uri", func(ctx *txn.Context) error {
		return c.registry.SetURI(ctx, caller, prefix, uri)
	})
}

// SetMintApproval - creator grants or revokes minting rights
func (c *Core) SetMintApproval(caller account.Address, prefix record.Prefix, minter account.Address, allowed bool) error {
	return c.execute("set_minting_authorization", func(ctx *txn.Context) error {
		return c.registry.SetMintApproval(ctx, caller, prefix, minter, allowed)
	})
}

// TrustEvaluator - creator allows or disallows an evaluator for a unique type
func (c *Core) TrustEvaluator(caller account.Address, prefix record.Prefix, evaluator account.Address, trusted bool) error {
	return c.execute("trust_evaluator", func(ctx *txn.Context) error {
		return c.machine.TrustEvaluator(ctx, caller, prefix, evaluator, trusted)
	})
}

// MintUnique - one new instance per recipient slot
func (c *Core) MintUnique(caller account.Address, prefix record.Prefix, recipients []account.Address) ([]record.Identifier, error) {
	var ids []record.Identifier
	err := c.execute("mint_unique", func(ctx *txn.Context) error {
		var err error
		ids, err = c.ledger.MintUnique(ctx, caller, prefix, recipients)
		return err
	})
	if nil != err {
		return nil, err
	}
	return ids, nil
}

// MintFungible - credit amounts of a fungible type
func (c *Core) MintFungible(caller account.Address, prefix record.Prefix, recipients []account.Address, amounts []uint64) error {
	return c.execute("mint_fungible", func(ctx *txn.Context) error {
		return c.ledger.MintFungible(ctx, caller, prefix, recipients, amounts)
	})
}

// SetApprovalForAll - grant or revoke an operator
func (c *Core) SetApprovalForAll(caller account.Address, operator account.Address, approved bool) error {
	return c.execute("set_approval_for_all", func(ctx *txn.Context) error {
		return c.ledger.SetApprovalForAll(ctx, caller, operator, approved)
	})
}

// Approve - compare and set an allowance
func (c *Core) Approve(caller account.Address, spender account.Address, id record.Identifier, previous uint64, amount uint64) error {
	return c.execute("approve", func(ctx *txn.Context) error {
		return c.ledger.Approve(ctx, caller, spender, id, previous, amount)
	})
}

// SafeTransfer - move a quantity of one record
func (c *Core) SafeTransfer(caller account.Address, from account.Address, to account.Address, id record.Identifier, amount uint64, data []byte) error {
	return c.execute("safe_transfer", func(ctx *txn.Context) error {
		return c.ledger.SafeTransfer(ctx, caller, from, to, id, amount, data)
	})
}

// SafeBatchTransfer - move several records as one unit
func (c *Core) SafeBatchTransfer(caller account.Address, from account.Address, to account.Address, ids []record.Identifier, amounts []uint64, data []byte) error {
	return c.execute("safe_transfer_batch", func(ctx *txn.Context) error {
		return c.ledger.SafeBatchTransfer(ctx, caller, from, to, ids, amounts, data)
	})
}

// Deposit - fund an account's native purse
func (c *Core) Deposit(holder account.Address, amount uint64) error {
	return c.execute("deposit", func(ctx *txn.Context) error {
		return c.ledger.Deposit(ctx, holder, amount)
	})
}

// Apply - owner starts an application with an evaluator
func (c *Core) Apply(caller account.Address, id record.Identifier, evaluator account.Address) error {
	return c.execute("apply", func(ctx *txn.Context) error {
		return c.machine.Apply(ctx, caller, id, evaluator)
	})
}

// Remove - owner withdraws an application
func (c *Core) Remove(caller account.Address, id record.Identifier) error {
	return c.execute("remove", func(ctx *txn.Context) error {
		return c.machine.Remove(ctx, caller, id)
	})
}

// DocsSubmitted - evaluator callback
func (c *Core) DocsSubmitted(caller account.Address, id record.Identifier) error {
	return c.execute("docs_submitted", func(ctx *txn.Context) error {
		return c.machine.DocsSubmitted(ctx, caller, id)
	})
}

// UserQualified - evaluator callback
func (c *Core) UserQualified(caller account.Address, id record.Identifier) error {
	return c.execute("user_qualified", func(ctx *txn.Context) error {
		return c.machine.UserQualified(ctx, caller, id)
	})
}

// UserRejected - evaluator callback
func (c *Core) UserRejected(caller account.Address, id record.Identifier) error {
	return c.execute("user_rejected", func(ctx *txn.Context) error {
		return c.machine.UserRejected(ctx, caller, id)
	})
}

// Finalize - evaluator burns one approved record
func (c *Core) Finalize(caller account.Address, id record.Identifier) error {
	return c.execute("finalize", func(ctx *txn.Context) error {
		return c.machine.Finalize(ctx, caller, id)
	})
}

// FinalizeBatch - evaluator burns several approved records
func (c *Core) FinalizeBatch(caller account.Address, ids []record.Identifier) error {
	return c.execute("finalize_batch", func(ctx *txn.Context) error {
		return c.machine.FinalizeBatch(ctx, caller, ids)
	})
}

// Sell - list a record
func (c *Core) Sell(caller account.Address, id record.Identifier, buyer account.Address, currency account.Address, price uint64, expires time.Time) error {
	return c.execute("sell", func(ctx *txn.Context) error {
		return c.exchange.Sell(ctx, caller, id, buyer, currency, price, expires)
	})
}

// CancelSale - withdraw a listing
func (c *Core) CancelSale(caller account.Address, id record.Identifier) error {
	return c.execute("cancel_sale", func(ctx *txn.Context) error {
		return c.exchange.Cancel(ctx, caller, id)
	})
}

// Buy - settle a listing, value is the native value carried
func (c *Core) Buy(caller account.Address, id record.Identifier, currency account.Address, value uint64) error {
	return c.execute("buy", func(ctx *txn.Context) error {
		return c.exchange.Buy(ctx, caller, id, currency, value)
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/currency"
	"github.com/bitmark-inc/registryd/currency/fungible"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// HostAsset - create a fungible asset kept in the ledger database and
// accept it for settlement
//
// the allocations are minted only the first time the asset is hosted;
// on later starts the stored balances are used as they are
func (c *Core) HostAsset(symbol string, owner account.Address, allocations map[account.Address]uint64) (*fungible.Token, error) {
	if "" == symbol {
		return nil, fault.InvalidArgument
	}
	if owner.IsNull() {
		return nil, fault.NullAddress
	}

	t := fungible.New(logger.New("asset"), fungible.Handles{
		Balances:   c.db.Pool.AssetBalances,
		Allowances: c.db.Pool.AssetAllowances,
		Supply:     c.db.Pool.AssetSupply,
	}, symbol, owner)

	if nil != c.exchange.Asset(t.Address()) {
		return nil, fault.AssetExists
	}

	made := false
	err := c.execute("host_asset", func(ctx *txn.Context) error {
		var err error
		made, err = t.Initialise(ctx, allocations)
		return err
	})
	if nil != err {
		return nil, err
	}

	c.exchange.RegisterAsset(t)
	c.log.Infof("asset: %q  address: %s  allocated: %t", symbol, t.Address(), made)
	return t, nil
}

func (c *Core) hostedAsset(token account.Address) (currency.Asset, error) {
	asset := c.exchange.Asset(token)
	if nil == asset {
		return nil, fault.UnknownCurrency
	}
	return asset, nil
}

// AssetTransfer - move units of an asset from the caller
func (c *Core) AssetTransfer(token account.Address, caller account.Address, to account.Address, amount uint64) error {
	asset, err := c.hostedAsset(token)
	if nil != err {
		return err
	}
	return c.execute("asset_transfer", func(ctx *txn.Context) error {
		return asset.Transfer(ctx, caller, to, amount)
	})
}

// AssetApprove - set the amount a spender, e.g. the escrow, may pull
func (c *Core) AssetApprove(token account.Address, caller account.Address, spender account.Address, amount uint64) error {
	asset, err := c.hostedAsset(token)
	if nil != err {
		return err
	}
	return c.execute("asset_approve", func(ctx *txn.Context) error {
		return asset.Approve(ctx, caller, spender, amount)
	})
}

// AssetSupply - units of an asset in existence
func (c *Core) AssetSupply(token account.Address) (uint64, error) {
	asset, err := c.hostedAsset(token)
	if nil != err {
		return 0, err
	}
	c.RLock()
	defer c.RUnlock()
	return asset.TotalSupply(storage.Committed), nil
}

// AssetBalance - units of an asset held
func (c *Core) AssetBalance(token account.Address, holder account.Address) (uint64, error) {
	asset, err := c.hostedAsset(token)
	if nil != err {
		return 0, err
	}
	c.RLock()
	defer c.RUnlock()
	return asset.BalanceOf(storage.Committed, holder), nil
}

// AssetAllowance - remaining amount a spender may pull
func (c *Core) AssetAllowance(token account.Address, owner account.Address, spender account.Address) (uint64, error) {
	asset, err := c.hostedAsset(token)
	if nil != err {
		return 0, err
	}
	c.RLock()
	defer c.RUnlock()
	return asset.Allowance(storage.Committed, owner, spender), nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/rpc/assets"
)

// Assets - list hosted fungible assets
func (c *Client) Assets() ([]assets.TokenInfo, error) {
	reply := &assets.ListReply{}
	err := c.call("Assets.List", assets.ListArguments{}, reply)
	return reply.Tokens, err
}

// AssetBalance - balance and allowance in one asset
func (c *Client) AssetBalance(token account.Address, holder account.Address, spender account.Address) (*assets.BalanceReply, error) {
	arguments := assets.BalanceArguments{
		Token:   token,
		Holder:  holder,
		Spender: spender,
	}
	reply := &assets.BalanceReply{}
	err := c.call("Assets.Balance", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// AssetTransfer - move an amount of an asset
func (c *Client) AssetTransfer(token account.Address, caller account.Address, to account.Address, amount uint64) error {
	arguments := assets.TransferArguments{
		Token:  token,
		Caller: caller,
		To:     to,
		Amount: amount,
	}
	return c.call("Assets.Transfer", arguments, &assets.EmptyReply{})
}

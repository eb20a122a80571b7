// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/escrow"
)

// SellData - the parameters for listing a record
type SellData struct {
	Caller   account.Address
	ID       record.Identifier
	Buyer    account.Address // null for any buyer
	Currency account.Address // null for native
	Price    uint64
	Expires  time.Time
}

// Sell - list a record with the escrow
func (c *Client) Sell(sellConfig *SellData) error {
	arguments := escrow.SellArguments{
		Caller:   sellConfig.Caller,
		ID:       sellConfig.ID,
		Buyer:    sellConfig.Buyer,
		Currency: sellConfig.Currency,
		Price:    sellConfig.Price,
		Expires:  sellConfig.Expires,
	}
	return c.call("Escrow.Sell", arguments, &escrow.EmptyReply{})
}

// Cancel - withdraw a listing
func (c *Client) Cancel(caller account.Address, id record.Identifier) error {
	arguments := escrow.CancelArguments{
		Caller: caller,
		ID:     id,
	}
	return c.call("Escrow.Cancel", arguments, &escrow.EmptyReply{})
}

// Buy - complete a listing
func (c *Client) Buy(caller account.Address, id record.Identifier, currency account.Address, value uint64) error {
	arguments := escrow.BuyArguments{
		Caller:   caller,
		ID:       id,
		Currency: currency,
		Value:    value,
	}
	return c.call("Escrow.Buy", arguments, &escrow.EmptyReply{})
}

// Option - the listing on a record, if any
func (c *Client) Option(id record.Identifier) (*escrow.OptionReply, error) {
	reply := &escrow.OptionReply{}
	err := c.call("Escrow.Option", escrow.OptionArguments{ID: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

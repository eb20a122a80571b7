// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
)

func runSell(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	price := c.Uint64("price")
	if 0 == price {
		return ErrInvalidAmount
	}

	expires := time.Time{}
	if d := c.Duration("expires"); d > 0 {
		expires = time.Now().Add(d).UTC()
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.Sell(&rpccalls.SellData{
		Caller:   m.caller,
		ID:       id,
		Buyer:    parseOptionalAccount(c.String("buyer")),
		Currency: parseCurrency(c.String("currency")),
		Price:    price,
		Expires:  expires,
	})
}

func runCancel(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.Cancel(m.caller, id)
}

func runBuy(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.Buy(m.caller, id, parseCurrency(c.String("currency")), c.Uint64("value"))
	if nil != err {
		return err
	}

	r, err := client.Record(id)
	if nil != err {
		return err
	}
	return printJson(m.w, r)
}

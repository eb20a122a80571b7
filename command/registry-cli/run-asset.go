// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAssets(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	tokens, err := client.Assets()
	if nil != err {
		return err
	}
	return printJson(m.w, tokens)
}

// allowance is reported against the escrow since that is the only
// spender the daemon itself pulls from
func runAssetBalance(c *cli.Context) error {
	token := parseCurrency(c.String("currency"))
	if token.IsNull() {
		return ErrMissingName
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	holder, err := ownerOrCaller(m, c.String("owner"))
	if nil != err {
		return err
	}

	info, err := client.Info()
	if nil != err {
		return err
	}

	response, err := client.AssetBalance(token, holder, info.Escrow)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runAssetTransfer(c *cli.Context) error {
	token := parseCurrency(c.String("currency"))
	if token.IsNull() {
		return ErrMissingName
	}
	receiver := c.String("receiver")
	if "" == receiver {
		return ErrMissingReceiver
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrInvalidAmount
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.AssetTransfer(token, m.caller, parseAccount(receiver), amount)
}

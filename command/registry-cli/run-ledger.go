// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
)

func runMint(c *cli.Context) error {
	prefix, err := parsePrefix(c.String("prefix"))
	if nil != err {
		return err
	}
	recipients, err := parseAccounts(c.StringSlice("to"))
	if nil != err {
		return err
	}
	amounts, err := parseAmounts(c.StringSlice("amount"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	ids, err := client.Mint(&rpccalls.MintData{
		Caller:     m.caller,
		Prefix:     prefix,
		Recipients: recipients,
		Amounts:    amounts,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"prefix": prefix,
		"ids":    ids,
	})
}

func runTransfer(c *cli.Context) error {
	receiver := c.String("receiver")
	if "" == receiver {
		return ErrMissingReceiver
	}
	ids, err := parseIdentifiers(c.StringSlice("id"))
	if nil != err {
		return err
	}
	amounts, err := parseAmounts(c.StringSlice("amount"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	from, err := ownerOrCaller(m, c.String("from"))
	if nil != err {
		return err
	}

	return client.Transfer(&rpccalls.TransferData{
		Caller:  m.caller,
		From:    from,
		To:      parseAccount(receiver),
		IDs:     ids,
		Amounts: amounts,
	})
}

func runOperator(c *cli.Context) error {
	operator := c.String("operator")
	if "" == operator {
		return ErrMissingReceiver
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.SetApprovalForAll(m.caller, parseAccount(operator), !c.Bool("revoke"))
}

func runDeposit(c *cli.Context) error {
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrInvalidAmount
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

	balance, err := client.Deposit(holder, amount)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"holder":  holder,
		"balance": balance,
	})
}

func runBalance(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	holder, err := ownerOrCaller(m, c.String("owner"))
	if nil != err {
		return err
	}

	if "" == c.String("id") {
		balance, err := client.Native(holder)
		if nil != err {
			return err
		}
		return printJson(m.w, map[string]interface{}{
			"holder":  holder,
			"native":  true,
			"balance": balance,
		})
	}

	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	balances, err := client.Balance([]account.Address{holder}, id)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"holder":  holder,
		"id":      id,
		"balance": balances[0],
	})
}

func runRecord(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	r, err := client.Record(id)
	if nil != err {
		return err
	}
	state, err := client.State(id)
	if nil != err {
		return err
	}
	option, err := client.Option(id)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"id":        id,
		"record":    r,
		"state":     state.State,
		"evaluator": state.Evaluator,
		"option":    option.Option,
	})
}

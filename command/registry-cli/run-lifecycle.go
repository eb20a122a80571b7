// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runApply(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	e := c.String("evaluator")
	if "" == e {
		return ErrMissingReceiver
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.Apply(m.caller, id, parseEvaluator(e))
	if nil != err {
		return err
	}

	state, err := client.State(id)
	if nil != err {
		return err
	}
	return printJson(m.w, state)
}

func runWithdraw(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.Withdraw(m.caller, id)
}

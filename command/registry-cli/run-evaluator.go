// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// command line action to RPC method
var evaluatorActions = map[string]string{
	"submitted": "DocsSubmitted",
	"qualified": "UserQualified",
	"rejected":  "UserRejected",
}

func runEvaluators(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	programs, err := client.Evaluators()
	if nil != err {
		return err
	}
	return printJson(m.w, programs)
}

func runApplications(c *cli.Context) error {
	name := c.String("program")
	if "" == name {
		return ErrMissingName
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Applications(name)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runEvaluate(c *cli.Context) error {
	name := c.String("program")
	if "" == name {
		return ErrMissingName
	}
	method, ok := evaluatorActions[c.String("action")]
	if !ok {
		return ErrUnknownAction
	}
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.Action(method, name, m.caller, id)
}

func runFinalize(c *cli.Context) error {
	name := c.String("program")
	if "" == name {
		return ErrMissingName
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	finalized, err := client.Finalize(name, m.caller, c.Int("batch"))
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]int{
		"finalized": finalized,
	})
}

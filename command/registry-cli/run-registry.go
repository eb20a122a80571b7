// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/record"
)

func runCreate(c *cli.Context) error {
	name := c.String("name")
	if "" == name {
		return ErrMissingName
	}
	var kind record.Kind
	if err := kind.UnmarshalText([]byte(c.String("kind"))); nil != err {
		return fmt.Errorf("kind: %q  error: %s", c.String("kind"), err)
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	prefix, err := client.Create(m.caller, name, kind)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"prefix": prefix,
		"kind":   kind,
	})
}

func runSetURI(c *cli.Context) error {
	prefix, err := parsePrefix(c.String("prefix"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.SetURI(m.caller, prefix, c.String("uri"))
}

func runPermit(c *cli.Context) error {
	prefix, err := parsePrefix(c.String("prefix"))
	if nil != err {
		return err
	}

	m, client, err := callerClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	allowed := !c.Bool("revoke")
	done := false

	if s := c.String("minter"); "" != s {
		err := client.Permission("SetMintApproval", m.caller, prefix, parseAccount(s), allowed)
		if nil != err {
			return err
		}
		done = true
	}
	if s := c.String("evaluator"); "" != s {
		err := client.Permission("TrustEvaluator", m.caller, prefix, parseEvaluator(s), allowed)
		if nil != err {
			return err
		}
		done = true
	}
	if !done {
		return ErrMissingReceiver
	}
	return nil
}

func runType(c *cli.Context) error {
	prefix, err := parsePrefix(c.String("prefix"))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Type(prefix, parseOptionalAccount(c.String("subject")))
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/currency/fungible"
	"github.com/bitmark-inc/registryd/evaluator"
	"github.com/bitmark-inc/registryd/record"
)

// an account is either its base58 form or a name that is hashed
// into an address the same way the daemon does
func parseAccount(s string) account.Address {
	if a, err := account.AddressFromBase58(s); nil == err {
		return a
	}
	return account.NewAddress(s)
}

// blank gives the null address
func parseOptionalAccount(s string) account.Address {
	if "" == s {
		return account.Address{}
	}
	return parseAccount(s)
}

func parseAccounts(list []string) ([]account.Address, error) {
	if 0 == len(list) {
		return nil, ErrMissingReceiver
	}
	addresses := make([]account.Address, len(list))
	for i, s := range list {
		addresses[i] = parseAccount(s)
	}
	return addresses, nil
}

func parsePrefix(s string) (record.Prefix, error) {
	var prefix record.Prefix
	if "" == s {
		return prefix, ErrMissingPrefix
	}
	err := prefix.UnmarshalText([]byte(s))
	return prefix, err
}

func parseIdentifier(s string) (record.Identifier, error) {
	var id record.Identifier
	if "" == s {
		return id, ErrMissingID
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

func parseIdentifiers(list []string) ([]record.Identifier, error) {
	if 0 == len(list) {
		return nil, ErrMissingID
	}
	ids := make([]record.Identifier, len(list))
	for i, s := range list {
		id, err := parseIdentifier(s)
		if nil != err {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func parseAmounts(list []string) ([]uint64, error) {
	amounts := make([]uint64, len(list))
	for i, s := range list {
		n, err := strconv.ParseUint(s, 10, 64)
		if nil != err || 0 == n {
			return nil, ErrInvalidAmount
		}
		amounts[i] = n
	}
	return amounts, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// hosted assets and evaluator programs derive their address from
// their name, so a plain name is accepted for either
func parseNamed(s string, derive func(string) account.Address) account.Address {
	if "" == s {
		return account.Address{}
	}
	if a, err := account.AddressFromBase58(s); nil == err {
		return a
	}
	return derive(s)
}

func parseCurrency(s string) account.Address {
	return parseNamed(s, fungible.Address)
}

func parseEvaluator(s string) account.Address {
	return parseNamed(s, evaluator.Address)
}

// blank owner defaults to the caller
func ownerOrCaller(m *metadata, s string) (account.Address, error) {
	if "" != s {
		return parseAccount(s), nil
	}
	if m.caller.IsNull() {
		return account.Address{}, ErrMissingCaller
	}
	return m.caller, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/registry"
)

// Create - register a new record type
func (c *Client) Create(caller account.Address, name string, kind record.Kind) (record.Prefix, error) {
	arguments := registry.CreateArguments{
		Caller: caller,
		Name:   name,
		Kind:   kind,
	}
	reply := &registry.CreateReply{}
	err := c.call("Registry.Create", arguments, reply)
	return reply.Prefix, err
}

// SetURI - change the metadata URI of a record type
func (c *Client) SetURI(caller account.Address, prefix record.Prefix, uri string) error {
	arguments := registry.SetURIArguments{
		Caller: caller,
		Prefix: prefix,
		URI:    uri,
	}
	return c.call("Registry.SetURI", arguments, &registry.EmptyReply{})
}

// Permission - grant or revoke minting or evaluator trust
//
// method is one of: SetMintApproval, TrustEvaluator
func (c *Client) Permission(method string, caller account.Address, prefix record.Prefix, subject account.Address, allowed bool) error {
	arguments := registry.PermissionArguments{
		Caller:  caller,
		Prefix:  prefix,
		Subject: subject,
		Allowed: allowed,
	}
	return c.call("Registry."+method, arguments, &registry.EmptyReply{})
}

// Type - describe a record type
func (c *Client) Type(prefix record.Prefix, subject account.Address) (*registry.TypeReply, error) {
	arguments := registry.TypeArguments{
		Prefix:  prefix,
		Subject: subject,
	}
	reply := &registry.TypeReply{}
	err := c.call("Registry.Type", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

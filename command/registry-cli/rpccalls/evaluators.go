// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/evaluators"
)

// Evaluators - list hosted evaluator programs
func (c *Client) Evaluators() ([]evaluators.ProgramInfo, error) {
	reply := &evaluators.ListReply{}
	err := c.call("Evaluators.List", evaluators.ListArguments{}, reply)
	return reply.Programs, err
}

// Applications - records currently under evaluation
func (c *Client) Applications(name string) (*evaluators.ApplicationsReply, error) {
	reply := &evaluators.ApplicationsReply{}
	err := c.call("Evaluators.Applications", evaluators.ApplicationsArguments{Name: name}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Action - an administrator step on one application
//
// method is one of: DocsSubmitted, UserQualified, UserRejected
func (c *Client) Action(method string, name string, caller account.Address, id record.Identifier) error {
	arguments := evaluators.ActionArguments{
		Name:   name,
		Caller: caller,
		ID:     id,
	}
	return c.call("Evaluators."+method, arguments, &evaluators.EmptyReply{})
}

// Finalize - close the applications up to a batch marker
func (c *Client) Finalize(name string, caller account.Address, batchMarker int) (int, error) {
	arguments := evaluators.FinalizeArguments{
		Name:        name,
		Caller:      caller,
		BatchMarker: batchMarker,
	}
	reply := &evaluators.FinalizeReply{}
	err := c.call("Evaluators.Finalize", arguments, reply)
	return reply.Finalized, err
}

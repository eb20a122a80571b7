// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/lifecycle"
)

// Apply - submit a record to an evaluator
func (c *Client) Apply(caller account.Address, id record.Identifier, evaluator account.Address) error {
	arguments := lifecycle.ApplyArguments{
		Caller:    caller,
		ID:        id,
		Evaluator: evaluator,
	}
	return c.call("Lifecycle.Apply", arguments, &lifecycle.EmptyReply{})
}

// Withdraw - take a record back from its evaluator
func (c *Client) Withdraw(caller account.Address, id record.Identifier) error {
	arguments := lifecycle.RecordArguments{
		Caller: caller,
		ID:     id,
	}
	return c.call("Lifecycle.Remove", arguments, &lifecycle.EmptyReply{})
}

// State - lifecycle state of a record
func (c *Client) State(id record.Identifier) (*lifecycle.StateReply, error) {
	reply := &lifecycle.StateReply{}
	err := c.call("Lifecycle.State", lifecycle.StateArguments{ID: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/rpc/node"
)

// Info - request status from registryd
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Events - read a page of the event log
func (c *Client) Events(start uint64, count int) (*node.EventsReply, error) {
	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}
	reply := &node.EventsReply{}
	err := c.call("Node.Events", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

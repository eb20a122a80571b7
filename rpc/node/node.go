// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/rpc/engine"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// limit for count
const maximumEventList = 100

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Engine  engine.Engine
	counter *counter.Counter
}

// New - create node RPC handler
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, e engine.Engine) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Engine:  e,
		counter: counter,
	}
}

// ---

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - result from RPC
type EventsReply struct {
	Events    []event.Event `json:"events"`
	NextStart uint64        `json:"nextStart,string"`
}

// Events - page through the committed event log
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {
	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEventList); nil != err {
		return err
	}

	events, err := node.Engine.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = events
	reply.NextStart = arguments.Start
	if n := len(events); n > 0 {
		reply.NextStart = events[n-1].Sequence + 1
	}
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version   string          `json:"version"`
	Uptime    string          `json:"uptime"`
	RPCs      uint64          `json:"rpcs"`
	LastEvent uint64          `json:"lastEvent,string"`
	Escrow    account.Address `json:"escrow"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.LastEvent = node.Engine.LastEvent()
	reply.Escrow = node.Engine.Escrow()
	return nil
}

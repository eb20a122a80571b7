// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluators

import (
	"sort"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/evaluator"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitEvaluators = 100
	rateBurstEvaluators = 50
)

// Program - an evaluator program hosted by this node
type Program interface {
	Address() account.Address
	Applications() []evaluator.Application
	DocsSubmitted(caller account.Address, id record.Identifier) error
	UserQualified(caller account.Address, id record.Identifier) error
	UserRejected(caller account.Address, id record.Identifier) error
	Finalize(caller account.Address, batchMarker int) (int, error)
}

// Evaluators - type for RPC calls
type Evaluators struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Programs map[string]Program
}

// New - create evaluators RPC handler
func New(log *logger.L, programs map[string]Program) *Evaluators {
	return &Evaluators{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitEvaluators, rateBurstEvaluators),
		Programs: programs,
	}
}

func (ev *Evaluators) limited(name string) (Program, error) {
	if err := ratelimit.Limit(ev.Limiter); nil != err {
		return nil, err
	}
	p, ok := ev.Programs[name]
	if !ok {
		return nil, fault.UnknownEvaluator
	}
	return p, nil
}

// ---

// ListArguments - empty arguments
type ListArguments struct{}

// ProgramInfo - one hosted program
type ProgramInfo struct {
	Name         string          `json:"name"`
	Address      account.Address `json:"address"`
	Applications int             `json:"applications"`
}

// ListReply - result from RPC
type ListReply struct {
	Programs []ProgramInfo `json:"programs"`
}

// List - hosted programs in name order
func (ev *Evaluators) List(_ *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(ev.Limiter); nil != err {
		return err
	}

	reply.Programs = make([]ProgramInfo, 0, len(ev.Programs))
	for name, p := range ev.Programs {
		reply.Programs = append(reply.Programs, ProgramInfo{
			Name:         name,
			Address:      p.Address(),
			Applications: len(p.Applications()),
		})
	}
	sort.Slice(reply.Programs, func(i, j int) bool {
		return reply.Programs[i].Name < reply.Programs[j].Name
	})
	return nil
}

// ---

// ApplicationsArguments - arguments for RPC
type ApplicationsArguments struct {
	Name string `json:"name"`
}

// ApplicationsReply - result from RPC
type ApplicationsReply struct {
	Applications []evaluator.Application `json:"applications"`
}

// Applications - records currently bound to a program
func (ev *Evaluators) Applications(arguments *ApplicationsArguments, reply *ApplicationsReply) error {
	p, err := ev.limited(arguments.Name)
	if nil != err {
		return err
	}
	reply.Applications = p.Applications()
	return nil
}

// ---

// ActionArguments - arguments for RPC
//
// Caller must be the program administrator
type ActionArguments struct {
	Name   string            `json:"name"`
	Caller account.Address   `json:"caller"`
	ID     record.Identifier `json:"id"`
}

// EmptyReply - result from RPC calls that return nothing
type EmptyReply struct{}

// DocsSubmitted - administrator marks documents received
func (ev *Evaluators) DocsSubmitted(arguments *ActionArguments, _ *EmptyReply) error {
	p, err := ev.limited(arguments.Name)
	if nil != err {
		return err
	}
	return p.DocsSubmitted(arguments.Caller, arguments.ID)
}

// UserQualified - administrator approves
func (ev *Evaluators) UserQualified(arguments *ActionArguments, _ *EmptyReply) error {
	p, err := ev.limited(arguments.Name)
	if nil != err {
		return err
	}
	return p.UserQualified(arguments.Caller, arguments.ID)
}

// UserRejected - administrator rejects
func (ev *Evaluators) UserRejected(arguments *ActionArguments, _ *EmptyReply) error {
	p, err := ev.limited(arguments.Name)
	if nil != err {
		return err
	}
	return p.UserRejected(arguments.Caller, arguments.ID)
}

// ---

// FinalizeArguments - arguments for RPC
//
// a zero BatchMarker finalises every approved application
type FinalizeArguments struct {
	Name        string          `json:"name"`
	Caller      account.Address `json:"caller"`
	BatchMarker int             `json:"batchMarker"`
}

// FinalizeReply - result from RPC
type FinalizeReply struct {
	Finalized int `json:"finalized"`
}

// Finalize - burn approved applications of a program
func (ev *Evaluators) Finalize(arguments *FinalizeArguments, reply *FinalizeReply) error {
	p, err := ev.limited(arguments.Name)
	if nil != err {
		return err
	}

	n, err := p.Finalize(arguments.Caller, arguments.BatchMarker)
	if nil != err {
		return err
	}

	ev.Log.Infof("Evaluators.Finalize: %q  finalized: %d", arguments.Name, n)

	reply.Finalized = n
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/engine.go -package=mocks github.com/bitmark-inc/registryd/evaluator Engine

// Package evaluator - a reference evaluator program
//
// the program accepts applications for one unique type during a time
// window, up to a maximum number outstanding, and lets its admin drive
// each application through the workflow.  Every admin action calls the
// engine with the program's own address.
package evaluator

import (
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
)

// Engine - the evaluator callbacks of the core
type Engine interface {
	DocsSubmitted(caller account.Address, id record.Identifier) error
	UserQualified(caller account.Address, id record.Identifier) error
	UserRejected(caller account.Address, id record.Identifier) error
	FinalizeBatch(caller account.Address, ids []record.Identifier) error
	Held(prefix record.Prefix, evaluator account.Address) ([]lifecycle.Application, error)
}

// Settings - program parameters
type Settings struct {
	Name                string          `json:"name"`
	Admin               account.Address `json:"admin"`
	Prefix              record.Prefix   `json:"prefix"`
	Start               time.Time       `json:"start"`
	End                 time.Time       `json:"end"` // zero for no end
	MaximumApplications int             `json:"maximumApplications"` // zero for no limit
}

// Application - one record under evaluation
type Application struct {
	ID    record.Identifier `json:"id"`
	Owner account.Address   `json:"owner"`
	State lifecycle.State   `json:"state"`
}

// Program - the evaluator
type Program struct {
	sync.Mutex
	log          *logger.L
	address      account.Address
	settings     Settings
	engine       Engine
	clock        func() time.Time
	applications map[record.Identifier]*Application
}

// New - create a program; its address derives from the name
func New(log *logger.L, settings Settings, engine Engine, clock func() time.Time) (*Program, error) {
	if "" == settings.Name {
		return nil, fault.InvalidArgument
	}
	if settings.Admin.IsNull() {
		return nil, fault.NullAddress
	}
	if record.Unique != settings.Prefix.Kind() {
		return nil, fault.InvalidArgument
	}
	if !settings.End.IsZero() && settings.End.Before(settings.Start) {
		return nil, fault.InvalidArgument
	}
	if nil == clock {
		clock = time.Now
	}

	return &Program{
		log:          log,
		address:      Address(settings.Name),
		settings:     settings,
		engine:       engine,
		clock:        clock,
		applications: make(map[record.Identifier]*Application),
	}, nil
}

// Address - the address of a named program
func Address(name string) account.Address {
	return account.NewAddress("evaluator:" + name)
}

// Address - identity used with the engine
func (p *Program) Address() account.Address {
	return p.address
}

// Restore - reload the outstanding applications held by the engine
//
// run once after New so that applications made before a restart can
// still be driven and finalized, and count against the maximum
func (p *Program) Restore() error {
	held, err := p.engine.Held(p.settings.Prefix, p.address)
	if nil != err {
		return err
	}

	p.Lock()
	defer p.Unlock()

	p.applications = make(map[record.Identifier]*Application, len(held))
	for _, a := range held {
		p.applications[a.ID] = &Application{
			ID:    a.ID,
			Owner: a.Owner,
			State: a.State,
		}
	}
	p.log.Infof("restored: %d applications", len(held))
	return nil
}

// Applied - accept or decline a new application
//
// called by the engine while it holds its own lock
func (p *Program) Applied(id record.Identifier, owner account.Address) bool {
	p.Lock()
	defer p.Unlock()

	if id.Prefix() != p.settings.Prefix {
		p.log.Debugf("decline: %s  wrong type", id)
		return false
	}

	now := p.clock()
	if now.Before(p.settings.Start) || (!p.settings.End.IsZero() && !now.Before(p.settings.End)) {
		p.log.Debugf("decline: %s  outside window", id)
		return false
	}
	if 0 != p.settings.MaximumApplications && len(p.applications) >= p.settings.MaximumApplications {
		p.log.Debugf("decline: %s  program full", id)
		return false
	}

	p.applications[id] = &Application{
		ID:    id,
		Owner: owner,
		State: lifecycle.Applied,
	}
	p.log.Infof("applied: %s  owner: %s", id, owner)
	return true
}

// Withdrawn - owner removed the application
func (p *Program) Withdrawn(id record.Identifier) {
	p.Lock()
	delete(p.applications, id)
	p.Unlock()
	p.log.Infof("withdrawn: %s", id)
}

// Applications - outstanding applications in identifier order
func (p *Program) Applications() []Application {
	p.Lock()
	defer p.Unlock()

	list := make([]Application, 0, len(p.applications))
	for _, a := range p.applications {
		list = append(list, *a)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// DocsSubmitted - admin marks documents received
func (p *Program) DocsSubmitted(caller account.Address, id record.Identifier) error {
	return p.drive(caller, id, p.engine.DocsSubmitted, lifecycle.Processing)
}

// UserQualified - admin approves an application
func (p *Program) UserQualified(caller account.Address, id record.Identifier) error {
	return p.drive(caller, id, p.engine.UserQualified, lifecycle.Approved)
}

// UserRejected - admin rejects an application
func (p *Program) UserRejected(caller account.Address, id record.Identifier) error {
	return p.drive(caller, id, p.engine.UserRejected, lifecycle.Available)
}

// Finalize - burn up to batchMarker approved records, zero for all
//
// returns the number burned
func (p *Program) Finalize(caller account.Address, batchMarker int) (int, error) {
	if caller != p.settings.Admin {
		return 0, fault.Forbidden
	}
	if batchMarker < 0 {
		return 0, fault.InvalidCount
	}

	limit := batchMarker
	if 0 == limit || limit > ledger.MaximumBatchSize {
		limit = ledger.MaximumBatchSize
	}

	ids := make([]record.Identifier, 0, limit)
	for _, a := range p.Applications() {
		if lifecycle.Approved == a.State {
			ids = append(ids, a.ID)
			if len(ids) >= limit {
				break
			}
		}
	}
	if 0 == len(ids) {
		return 0, nil
	}

	// engine lock is taken without holding ours
	err := p.engine.FinalizeBatch(p.address, ids)
	if nil != err {
		return 0, err
	}

	p.Lock()
	for _, id := range ids {
		delete(p.applications, id)
	}
	p.Unlock()

	p.log.Infof("finalized: %d", len(ids))
	return len(ids), nil
}

func (p *Program) drive(caller account.Address, id record.Identifier, action func(account.Address, record.Identifier) error, to lifecycle.State) error {
	if caller != p.settings.Admin {
		return fault.Forbidden
	}

	err := action(p.address, id)
	if nil != err {
		return err
	}

	p.Lock()
	defer p.Unlock()
	if lifecycle.Available == to {
		delete(p.applications, id)
	} else if a, ok := p.applications[id]; ok {
		a.State = to
	}
	p.log.Infof("record: %s  now: %s", id, to)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/core"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

// adjustable clock
type clock struct {
	sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.Lock()
	c.now = c.now.Add(d)
	c.Unlock()
}

// collects everything published
type collector struct {
	sync.Mutex
	events []event.Event
}

func (c *collector) Publish(events []event.Event) {
	c.Lock()
	c.events = append(c.events, events...)
	c.Unlock()
}

type testCore struct {
	db        *storage.Database
	core      *core.Core
	clock     *clock
	published *collector
}

func setup(t *testing.T) *testCore {
	fixtures.SetupTestLogger()

	db, err := storage.Open("")
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	clk := &clock{now: time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)}
	published := &collector{}

	c, err := core.New(db, core.Options{
		Escrow:    fixtures.Escrow,
		Publisher: published,
		Clock:     clk.Now,
	})
	if nil != err {
		t.Fatalf("core error: %s", err)
	}

	return &testCore{
		db:        db,
		core:      c,
		clock:     clk,
		published: published,
	}
}

func (tc *testCore) teardown() {
	tc.db.Close()
	fixtures.TeardownTestLogger()
}

// unique type with the fixture evaluator trusted
func (tc *testCore) uniqueType(t *testing.T) record.Prefix {
	prefix, err := tc.core.CreateType(fixtures.Creator, "deed", record.Unique)
	if nil != err {
		t.Fatalf("create type error: %s", err)
	}
	err = tc.core.TrustEvaluator(fixtures.Creator, prefix, fixtures.Evaluator, true)
	if nil != err {
		t.Fatalf("trust error: %s", err)
	}
	return prefix
}

func (tc *testCore) mint(t *testing.T, prefix record.Prefix, to account.Address) record.Identifier {
	ids, err := tc.core.MintUnique(fixtures.Creator, prefix, []account.Address{to})
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return ids[0]
}

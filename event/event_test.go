// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

func TestStoreAndList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, err := storage.Open("")
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	defer db.Close()

	assert.Equal(t, uint64(0), event.Last(db.Pool.Globals), "sequence not zero at start")

	for round := 0; round < 2; round += 1 {
		trx, _ := db.Begin()
		stored, err := event.Store(trx, db.Pool.Events, db.Pool.Globals, []event.Event{
			{Kind: event.Minted, Record: record.Identifier(0x8000000100000001), To: fixtures.Alice, Amount: 1},
			{Kind: event.Transfer, Record: record.Identifier(0x8000000100000001), From: fixtures.Alice, To: fixtures.Bob, Amount: 1},
		})
		assert.Nil(t, err, "store error")
		assert.Equal(t, uint64(2*round+1), stored[0].Sequence, "wrong first sequence")
		assert.Equal(t, uint64(2*round+2), stored[1].Sequence, "wrong second sequence")
		_ = trx.Commit()
	}

	assert.Equal(t, uint64(4), event.Last(db.Pool.Globals), "wrong last sequence")

	list, err := event.List(db.Pool.Events, 2, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 3, len(list), "wrong event count")
	assert.Equal(t, uint64(2), list[0].Sequence, "wrong first listed")
	assert.Equal(t, event.Transfer, list[0].Kind, "wrong kind")
	assert.Equal(t, fixtures.Bob, list[0].To, "wrong recipient")

	_, err = event.List(db.Pool.Events, 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count allowed")
}

func TestStoreNothing(t *testing.T) {
	stored, err := event.Store(nil, nil, nil, nil)
	assert.Nil(t, err, "error for empty list")
	assert.Nil(t, stored, "events for empty list")
}

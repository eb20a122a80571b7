// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/registryd/fault"
)

// Transaction - an all or nothing set of writes across every pool
//
// reads through the transaction see its own pending writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB, cache Cache) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

// Begin - mark the transaction as in use
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}

	t.inUse = true
	return nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	value, op, found := t.cache.Get(string(p.prefixKey(key)))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	return p.Get(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	_, op, found := t.cache.Get(string(p.prefixKey(key)))
	if found {
		return dbPut == op
	}
	return p.Has(key)
}

// Commit - write all pending changes in one batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard all pending changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.reset()
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}

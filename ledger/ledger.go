// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
)

// MaximumBatchSize - largest mint or transfer batch
const MaximumBatchSize = 100

// Handles - storage pools used by the ledger
type Handles struct {
	Balances       *storage.PoolHandle
	Owners         *storage.PoolHandle
	Supply         *storage.PoolHandle
	Operators      *storage.PoolHandle
	Allowances     *storage.PoolHandle
	NativeBalances *storage.PoolHandle
}

// LockFunc - reports whether a unique record may not change hands
type LockFunc func(rd storage.Reader, id record.Identifier) bool

// Ledger - holder balances
type Ledger struct {
	sync.RWMutex
	log       *logger.L
	pools     Handles
	registry  *registry.Registry
	locked    LockFunc
	receivers map[account.Address]Receiver
}

// New - create a ledger
func New(log *logger.L, pools Handles, reg *registry.Registry) *Ledger {
	return &Ledger{
		log:       log,
		pools:     pools,
		registry:  reg,
		receivers: make(map[account.Address]Receiver),
	}
}

// SetLockCheck - install the transfer lock test
//
// lifecycle and escrow are created after the ledger so the check is
// installed once they exist
func (l *Ledger) SetLockCheck(f LockFunc) {
	l.Lock()
	l.locked = f
	l.Unlock()
}

func (l *Ledger) isLocked(rd storage.Reader, id record.Identifier) bool {
	l.RLock()
	f := l.locked
	l.RUnlock()
	return nil != f && f(rd, id)
}

func balanceKey(holder account.Address, id record.Identifier) []byte {
	return append(holder.Bytes(), id.Bytes()...)
}

func operatorKey(owner account.Address, operator account.Address) []byte {
	return append(owner.Bytes(), operator.Bytes()...)
}

func allowanceKey(owner account.Address, spender account.Address, id record.Identifier) []byte {
	key := make([]byte, 0, 2*account.AddressLength+record.IdentifierLength)
	key = append(key, owner[:]...)
	key = append(key, spender[:]...)
	return append(key, id.Bytes()...)
}

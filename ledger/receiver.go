// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
)

// Receiver - a component holder that acknowledges incoming records
//
// called synchronously inside the transfer; returning false aborts it.
// Implementations must not call back into the ledger.
type Receiver interface {
	OnReceived(operator account.Address, from account.Address, id record.Identifier, amount uint64, data []byte) bool
	OnBatchReceived(operator account.Address, from account.Address, ids []record.Identifier, amounts []uint64, data []byte) bool
}

// RegisterReceiver - mark an address as a component with a hook
func (l *Ledger) RegisterReceiver(address account.Address, r Receiver) {
	l.Lock()
	l.receivers[address] = r
	l.Unlock()
}

// UnregisterReceiver - address becomes a simple holder again
func (l *Ledger) UnregisterReceiver(address account.Address) {
	l.Lock()
	delete(l.receivers, address)
	l.Unlock()
}

func (l *Ledger) receiver(address account.Address) Receiver {
	l.RLock()
	defer l.RUnlock()
	return l.receivers[address]
}

func (l *Ledger) notify(operator account.Address, from account.Address, to account.Address, id record.Identifier, amount uint64, data []byte) error {
	r := l.receiver(to)
	if nil == r {
		return nil
	}
	if !r.OnReceived(operator, from, id, amount, data) {
		l.log.Debugf("receiver: %s rejected: %s", to, id)
		return fault.TransferRejected
	}
	return nil
}

func (l *Ledger) notifyBatch(operator account.Address, from account.Address, to account.Address, ids []record.Identifier, amounts []uint64, data []byte) error {
	r := l.receiver(to)
	if nil == r {
		return nil
	}
	if !r.OnBatchReceived(operator, from, ids, amounts, data) {
		l.log.Debugf("receiver: %s rejected batch of: %d", to, len(ids))
		return fault.TransferRejected
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Evaluator - an in-process evaluator component
//
// Applied is asked to accept a new application and Withdrawn is told
// when the owner removes one.  Both run inside the operation and must
// not call back into the core.
type Evaluator interface {
	Address() account.Address
	Applied(id record.Identifier, owner account.Address) bool
	Withdrawn(id record.Identifier)
}

// RegisterEvaluator - make an evaluator's hooks reachable
//
// an evaluator that is trusted but not registered is external and is
// only driven through its callbacks
func (m *Machine) RegisterEvaluator(e Evaluator) {
	m.Lock()
	m.evaluators[e.Address()] = e
	m.Unlock()
}

// UnregisterEvaluator - remove an evaluator's hooks
func (m *Machine) UnregisterEvaluator(address account.Address) {
	m.Lock()
	delete(m.evaluators, address)
	m.Unlock()
}

func (m *Machine) evaluator(address account.Address) Evaluator {
	m.RLock()
	defer m.RUnlock()
	return m.evaluators[address]
}

// TrustEvaluator - allow or disallow an evaluator for a type, creator only
func (m *Machine) TrustEvaluator(ctx *txn.Context, caller account.Address, prefix record.Prefix, evaluator account.Address, trusted bool) error {
	d, err := m.registry.Descriptor(ctx, prefix)
	if nil != err {
		return err
	}
	if caller != d.Creator {
		return fault.Forbidden
	}
	if record.Unique != d.Kind {
		return fault.InvalidArgument
	}
	if evaluator.IsNull() {
		return fault.NullAddress
	}

	key := append(prefix.Bytes(), evaluator[:]...)
	if trusted {
		ctx.Put(m.pools.Evaluators, key, []byte{1})
	} else {
		ctx.Delete(m.pools.Evaluators, key)
	}

	ctx.Emit(event.Event{
		Kind:     event.EvaluatorTrusted,
		Record:   prefix.Identifier(),
		Operator: caller,
		To:       evaluator,
		Approved: trusted,
	})
	return nil
}

// IsTrusted - check an evaluator against a type
func (m *Machine) IsTrusted(rd storage.Reader, prefix record.Prefix, evaluator account.Address) bool {
	return rd.Has(m.pools.Evaluators, append(prefix.Bytes(), evaluator[:]...))
}

// Application - a record bound to an evaluator
type Application struct {
	ID    record.Identifier `json:"id"`
	Owner account.Address   `json:"owner"`
	State State             `json:"state"`
}

// Held - committed applications of one type bound to an evaluator,
// in identifier order
func (m *Machine) Held(prefix record.Prefix, evaluator account.Address) ([]Application, error) {
	list := make([]Application, 0)

	cursor := m.pools.Lifecycle.NewPrefixCursor(prefix.Bytes())
	err := cursor.Map(func(key []byte, value []byte) error {
		if 1+account.AddressLength != len(value) {
			return nil
		}
		bound, err := account.AddressFromBytes(value[1:])
		if nil != err || bound != evaluator {
			return nil
		}
		id, err := record.IdentifierFromBytes(key)
		if nil != err {
			m.log.Criticalf("lifecycle key: %x  error: %s", key, err)
			return err
		}
		owner, _ := m.ledger.OwnerOf(storage.Committed, id)
		list = append(list, Application{
			ID:    id,
			Owner: owner,
			State: State(value[0]),
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return list, nil
}

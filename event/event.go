// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - the audit trail of committed operations
package event

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

// Kind - what happened
type Kind string

// event kinds
const (
	TypeCreated         Kind = "type-created"
	URIChanged          Kind = "uri-changed"
	MintApprovalChanged Kind = "mint-approval-changed"
	EvaluatorTrusted    Kind = "evaluator-trusted"
	Minted              Kind = "minted"
	Transfer            Kind = "transfer"
	ApprovalChanged     Kind = "approval-changed"
	AllowanceSet        Kind = "allowance-set"
	LifecycleChanged    Kind = "lifecycle-changed"
	OptionCreated       Kind = "option-created"
	OptionSettled       Kind = "option-settled"
	OptionCancelled     Kind = "option-cancelled"
	Deposited           Kind = "deposited"
)

// Event - one change to the ledger
//
// only the fields relevant to the kind are filled
type Event struct {
	Sequence  uint64            `json:"sequence"`
	Timestamp int64             `json:"timestamp"`
	Kind      Kind              `json:"kind"`
	Record    record.Identifier `json:"record"`
	Operator  account.Address   `json:"operator"`
	From      account.Address   `json:"from"`
	To        account.Address   `json:"to"`
	Amount    uint64            `json:"amount,omitempty"`
	Name      string            `json:"name,omitempty"`
	URI       string            `json:"uri,omitempty"`
	Approved  bool              `json:"approved,omitempty"`
	OldState  string            `json:"oldState,omitempty"`
	NewState  string            `json:"newState,omitempty"`
	Currency  account.Address   `json:"currency"`
	Price     uint64            `json:"price,omitempty"`
	Expires   int64             `json:"expires,omitempty"`
}

// key in the globals pool
var sequenceKey = []byte("event-sequence")

// Store - number the events and write them within the transaction
//
// returns the numbered events
func Store(trx storage.Transaction, events *storage.PoolHandle, globals *storage.PoolHandle, list []Event) ([]Event, error) {
	if 0 == len(list) {
		return nil, nil
	}

	sequence, _ := trx.GetN(globals, sequenceKey)

	stored := make([]Event, len(list))
	for i, e := range list {
		sequence += 1
		e.Sequence = sequence

		buffer, err := json.Marshal(e)
		if nil != err {
			return nil, err
		}

		trx.Put(events, sequenceBytes(sequence), buffer)
		stored[i] = e
	}
	trx.PutN(globals, sequenceKey, sequence)

	return stored, nil
}

// List - read committed events in sequence order starting from start
func List(events *storage.PoolHandle, start uint64, count int) ([]Event, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	elements, err := events.NewFetchCursor().Seek(sequenceBytes(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	list := make([]Event, 0, len(elements))
	for _, element := range elements {
		var e Event
		err := json.Unmarshal(element.Value, &e)
		if nil != err {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

// Last - the sequence number of the latest committed event
func Last(globals *storage.PoolHandle) uint64 {
	n, _ := globals.GetN(sequenceKey)
	return n
}

func sequenceBytes(sequence uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, sequence)
	return buffer
}

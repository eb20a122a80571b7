// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/txn"
)

// MintUnique - create one instance per recipient
//
// every slot consumes an index; a null recipient leaves its index
// permanently unassigned and its entry in the result is null
func (l *Ledger) MintUnique(ctx *txn.Context, caller account.Address, prefix record.Prefix, recipients []account.Address) ([]record.Identifier, error) {
	if 0 == len(recipients) || len(recipients) > MaximumBatchSize {
		return nil, fault.InvalidArgument
	}

	d, err := l.registry.Descriptor(ctx, prefix)
	if nil != err {
		return nil, err
	}
	if record.Unique != d.Kind {
		return nil, fault.InvalidArgument
	}
	if caller != d.Creator && !l.registry.IsMintApproved(ctx, prefix, caller) {
		return nil, fault.Forbidden
	}

	ids := make([]record.Identifier, len(recipients))
	for i, recipient := range recipients {
		id, err := l.registry.AllocateIndex(ctx, prefix)
		if nil != err {
			return nil, err
		}
		if recipient.IsNull() {
			continue
		}

		err = l.issue(ctx, recipient, id, 1)
		if nil != err {
			return nil, err
		}
		ids[i] = id

		ctx.Emit(event.Event{
			Kind:     event.Minted,
			Record:   id,
			Operator: caller,
			To:       recipient,
			Amount:   1,
		})
	}

	l.log.Debugf("mint unique: %s  slots: %d  caller: %s", prefix, len(recipients), caller)
	return ids, nil
}

// MintFungible - add amounts to each recipient
//
// the caller must be the creator or an operator of the creator
func (l *Ledger) MintFungible(ctx *txn.Context, caller account.Address, prefix record.Prefix, recipients []account.Address, amounts []uint64) error {
	if len(recipients) != len(amounts) || 0 == len(recipients) || len(recipients) > MaximumBatchSize {
		return fault.InvalidArgument
	}

	d, err := l.registry.Descriptor(ctx, prefix)
	if nil != err {
		return err
	}
	if record.Fungible != d.Kind {
		return fault.InvalidArgument
	}
	if caller != d.Creator && !l.IsApprovedForAll(ctx, d.Creator, caller) {
		return fault.Forbidden
	}

	id := prefix.Identifier()
	for i, recipient := range recipients {
		if recipient.IsNull() || 0 == amounts[i] {
			continue
		}

		err := l.issue(ctx, recipient, id, amounts[i])
		if nil != err {
			return err
		}

		ctx.Emit(event.Event{
			Kind:     event.Minted,
			Record:   id,
			Operator: caller,
			To:       recipient,
			Amount:   amounts[i],
		})
	}

	l.log.Debugf("mint fungible: %s  slots: %d  caller: %s", prefix, len(recipients), caller)
	return nil
}

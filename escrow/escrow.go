// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - two party exchange of unique records
//
// a seller lists an owned, available record with a price, currency,
// optional buyer and expiry; the record is then locked against plain
// transfer and application until it is bought or the listing is
// cancelled
package escrow

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/currency"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/ledger"
	"github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Handles - storage pools used by the exchange
type Handles struct {
	Options *storage.PoolHandle
}

// Exchange - the escrow
type Exchange struct {
	sync.RWMutex
	log     *logger.L
	pools   Handles
	ledger  *ledger.Ledger
	machine *lifecycle.Machine
	self    account.Address
	assets  map[account.Address]currency.Asset
}

// New - create the exchange
//
// self is the identity the exchange uses when moving records and
// pulling external assets
func New(log *logger.L, pools Handles, l *ledger.Ledger, m *lifecycle.Machine, self account.Address) *Exchange {
	return &Exchange{
		log:     log,
		pools:   pools,
		ledger:  l,
		machine: m,
		self:    self,
		assets:  make(map[account.Address]currency.Asset),
	}
}

// Address - identity of the exchange
func (e *Exchange) Address() account.Address {
	return e.self
}

// RegisterAsset - accept an external asset as a settlement currency
func (e *Exchange) RegisterAsset(asset currency.Asset) {
	e.Lock()
	e.assets[asset.Address()] = asset
	e.Unlock()
}

// Asset - a registered settlement asset, nil if unknown
func (e *Exchange) Asset(address account.Address) currency.Asset {
	e.RLock()
	defer e.RUnlock()
	return e.assets[address]
}

// HasOption - true while a listing is outstanding
func (e *Exchange) HasOption(rd storage.Reader, id record.Identifier) bool {
	return rd.Has(e.pools.Options, id.Bytes())
}

// OptionOf - read a listing
func (e *Exchange) OptionOf(rd storage.Reader, id record.Identifier) (*Option, error) {
	buffer := rd.Get(e.pools.Options, id.Bytes())
	if nil == buffer {
		return nil, fault.OptionNotFound
	}
	o, err := UnpackOption(buffer)
	if nil != err {
		e.log.Criticalf("option: %s  unpack error: %s", id, err)
		return nil, err
	}
	return o, nil
}

// Sell - list an owned record
func (e *Exchange) Sell(ctx *txn.Context, caller account.Address, id record.Identifier, buyer account.Address, curr account.Address, price uint64, expires time.Time) error {
	if !id.IsUniqueInstance() {
		return fault.InvalidArgument
	}
	if _, err := e.ledger.Descriptor(ctx, id); nil != err {
		return err
	}

	state := e.machine.State(ctx, id)
	if lifecycle.Burned == state {
		return fault.RecordNotAvailable
	}
	if owner, _ := e.ledger.OwnerOf(ctx, id); owner != caller {
		return fault.Forbidden
	}
	if lifecycle.Available != state {
		return fault.RecordNotAvailable
	}

	if !currency.IsNative(curr) && nil == e.Asset(curr) {
		return fault.UnknownCurrency
	}
	if 0 == price {
		return fault.InvalidArgument
	}
	if !expires.After(ctx.Now()) {
		return fault.InvalidExpiry
	}

	o := &Option{
		Seller:   caller,
		Buyer:    buyer,
		Currency: curr,
		Price:    price,
		Expires:  expires.UTC(),
	}
	ctx.Put(e.pools.Options, id.Bytes(), o.Pack())

	ctx.Emit(event.Event{
		Kind:     event.OptionCreated,
		Record:   id,
		Operator: caller,
		From:     caller,
		To:       buyer,
		Currency: curr,
		Price:    price,
		Expires:  o.Expires.Unix(),
	})
	e.emitState(ctx, caller, id, lifecycle.Available, lifecycle.Optioned)

	e.log.Debugf("sell: %s  price: %d  currency: %s  buyer: %s", id, price, curr, buyer)
	return nil
}

// Cancel - seller withdraws a listing, expired or not
func (e *Exchange) Cancel(ctx *txn.Context, caller account.Address, id record.Identifier) error {
	o, err := e.OptionOf(ctx, id)
	if nil != err {
		return err
	}
	if caller != o.Seller {
		return fault.Forbidden
	}

	ctx.Delete(e.pools.Options, id.Bytes())

	ctx.Emit(event.Event{
		Kind:     event.OptionCancelled,
		Record:   id,
		Operator: caller,
		From:     caller,
		To:       o.Buyer,
		Currency: o.Currency,
		Price:    o.Price,
	})
	e.emitState(ctx, caller, id, lifecycle.Optioned, lifecycle.Available)

	e.log.Debugf("cancel: %s", id)
	return nil
}

// Buy - settle a listing
//
// value is the native value carried by the call and must be zero when
// settling in an external asset
func (e *Exchange) Buy(ctx *txn.Context, caller account.Address, id record.Identifier, curr account.Address, value uint64) error {
	o, err := e.OptionOf(ctx, id)
	if nil != err {
		return err
	}
	if o.HasExpired(ctx.Now()) {
		return fault.OptionExpired
	}
	if !o.IsOpen() && caller != o.Buyer {
		return fault.WrongBuyer
	}
	if curr != o.Currency {
		return fault.CurrencyMismatch
	}

	// an external pull is written through the same transaction, so a
	// failure anywhere below aborts the payment with the delivery
	if currency.IsNative(curr) {
		if value != o.Price {
			return fault.PaymentFailed
		}
		if err := e.ledger.DebitNative(ctx, caller, value); nil != err {
			return fault.PaymentFailed
		}
		if err := e.ledger.CreditNative(ctx, o.Seller, value); nil != err {
			return err
		}
	} else {
		if 0 != value {
			return fault.PaymentFailed
		}
		asset := e.Asset(curr)
		if nil == asset {
			return fault.UnknownCurrency
		}
		if asset.Allowance(ctx, caller, e.self) < o.Price || asset.BalanceOf(ctx, caller) < o.Price {
			return fault.PaymentFailed
		}
		err := asset.TransferFrom(ctx, e.self, caller, o.Seller, o.Price)
		if nil != err {
			e.log.Debugf("buy: %s  asset: %s  pull error: %s", id, curr, err)
			return fault.PaymentFailed
		}
	}

	err = e.ledger.Deliver(ctx, e.self, o.Seller, caller, id, nil)
	if nil != err {
		return err
	}
	ctx.Delete(e.pools.Options, id.Bytes())

	ctx.Emit(event.Event{
		Kind:     event.OptionSettled,
		Record:   id,
		Operator: caller,
		From:     o.Seller,
		To:       caller,
		Currency: curr,
		Price:    o.Price,
	})
	e.emitState(ctx, caller, id, lifecycle.Optioned, lifecycle.Available)

	e.log.Debugf("buy: %s  price: %d  seller: %s  buyer: %s", id, o.Price, o.Seller, caller)
	return nil
}

func (e *Exchange) emitState(ctx *txn.Context, caller account.Address, id record.Identifier, from lifecycle.State, to lifecycle.State) {
	ctx.Emit(event.Event{
		Kind:     event.LifecycleChanged,
		Record:   id,
		Operator: caller,
		OldState: from.String(),
		NewState: to.String(),
	})
}

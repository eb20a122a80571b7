// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/escrow"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/engine"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitEscrow = 100
	rateBurstEscrow = 50
)

// Escrow - type for RPC calls
type Escrow struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create escrow RPC handler
func New(log *logger.L, e engine.Engine) *Escrow {
	return &Escrow{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEscrow, rateBurstEscrow),
		Engine:  e,
	}
}

// EmptyReply - result from RPC calls that return nothing
type EmptyReply struct{}

// ---

// SellArguments - arguments for RPC
//
// a null currency means the native currency
type SellArguments struct {
	Caller   account.Address   `json:"caller"`
	ID       record.Identifier `json:"id"`
	Buyer    account.Address   `json:"buyer"`
	Currency account.Address   `json:"currency"`
	Price    uint64            `json:"price"`
	Expires  time.Time         `json:"expires"`
}

// Sell - list a record for one buyer
func (e *Escrow) Sell(arguments *SellArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Sell: %s  buyer: %s  price: %d", arguments.ID, arguments.Buyer, arguments.Price)

	return e.Engine.Sell(arguments.Caller, arguments.ID, arguments.Buyer, arguments.Currency, arguments.Price, arguments.Expires)
}

// CancelArguments - arguments for RPC
type CancelArguments struct {
	Caller account.Address   `json:"caller"`
	ID     record.Identifier `json:"id"`
}

// Cancel - seller withdraws a listing
func (e *Escrow) Cancel(arguments *CancelArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}
	return e.Engine.CancelSale(arguments.Caller, arguments.ID)
}

// BuyArguments - arguments for RPC
//
// Value is the native payment and must be zero for an external currency
type BuyArguments struct {
	Caller   account.Address   `json:"caller"`
	ID       record.Identifier `json:"id"`
	Currency account.Address   `json:"currency"`
	Value    uint64            `json:"value"`
}

// Buy - settle a listing
func (e *Escrow) Buy(arguments *BuyArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Buy: %s  buyer: %s", arguments.ID, arguments.Caller)

	return e.Engine.Buy(arguments.Caller, arguments.ID, arguments.Currency, arguments.Value)
}

// ---

// OptionArguments - arguments for RPC
type OptionArguments struct {
	ID record.Identifier `json:"id"`
}

// OptionReply - result from RPC
type OptionReply struct {
	Escrow account.Address `json:"escrow"`
	Option *escrow.Option  `json:"option"`
}

// Option - the outstanding listing of a record
func (e *Escrow) Option(arguments *OptionArguments, reply *OptionReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	option, err := e.Engine.Option(arguments.ID)
	if nil != err {
		return err
	}
	reply.Escrow = e.Engine.Escrow()
	reply.Option = option
	return nil
}

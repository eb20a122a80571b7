// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/engine"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// limit for list arguments
const maximumBatchCount = 100

// Ledger - type for RPC calls
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create ledger RPC handler
func New(log *logger.L, e engine.Engine) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Engine:  e,
	}
}

// EmptyReply - result from RPC calls that return nothing
type EmptyReply struct{}

// ---

// MintArguments - arguments for RPC
//
// Amounts is ignored for a unique type
type MintArguments struct {
	Caller     account.Address   `json:"caller"`
	Prefix     record.Prefix     `json:"prefix"`
	Recipients []account.Address `json:"recipients"`
	Amounts    []uint64          `json:"amounts"`
}

// MintReply - result from RPC
type MintReply struct {
	IDs []record.Identifier `json:"ids,omitempty"`
}

// Mint - create unique instances or fungible units
func (l *Ledger) Mint(arguments *MintArguments, reply *MintReply) error {
	if err := ratelimit.LimitN(l.Limiter, len(arguments.Recipients), maximumBatchCount); nil != err {
		return err
	}

	if record.Unique == arguments.Prefix.Kind() {
		ids, err := l.Engine.MintUnique(arguments.Caller, arguments.Prefix, arguments.Recipients)
		if nil != err {
			return err
		}
		reply.IDs = ids
		return nil
	}

	return l.Engine.MintFungible(arguments.Caller, arguments.Prefix, arguments.Recipients, arguments.Amounts)
}

// ---

// OperatorArguments - arguments for RPC
type OperatorArguments struct {
	Caller   account.Address `json:"caller"`
	Operator account.Address `json:"operator"`
	Approved bool            `json:"approved"`
}

// SetApprovalForAll - authorise or revoke an operator over all holdings
func (l *Ledger) SetApprovalForAll(arguments *OperatorArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	return l.Engine.SetApprovalForAll(arguments.Caller, arguments.Operator, arguments.Approved)
}

// ---

// ApproveArguments - arguments for RPC
type ApproveArguments struct {
	Caller   account.Address   `json:"caller"`
	Spender  account.Address   `json:"spender"`
	ID       record.Identifier `json:"id"`
	Previous uint64            `json:"previous"`
	Amount   uint64            `json:"amount"`
}

// Approve - compare and set a per-record allowance
func (l *Ledger) Approve(arguments *ApproveArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	return l.Engine.Approve(arguments.Caller, arguments.Spender, arguments.ID, arguments.Previous, arguments.Amount)
}

// ---

// TransferArguments - arguments for RPC
//
// a single identifier uses the single transfer path
type TransferArguments struct {
	Caller  account.Address     `json:"caller"`
	From    account.Address     `json:"from"`
	To      account.Address     `json:"to"`
	IDs     []record.Identifier `json:"ids"`
	Amounts []uint64            `json:"amounts"`
	Data    []byte              `json:"data"`
}

// Transfer - move records between holders
func (l *Ledger) Transfer(arguments *TransferArguments, _ *EmptyReply) error {
	if err := ratelimit.LimitN(l.Limiter, len(arguments.IDs), maximumBatchCount); nil != err {
		return err
	}

	if 1 == len(arguments.IDs) {
		if 1 != len(arguments.Amounts) {
			return fault.InvalidArgument
		}
		return l.Engine.SafeTransfer(arguments.Caller, arguments.From, arguments.To, arguments.IDs[0], arguments.Amounts[0], arguments.Data)
	}
	return l.Engine.SafeBatchTransfer(arguments.Caller, arguments.From, arguments.To, arguments.IDs, arguments.Amounts, arguments.Data)
}

// ---

// DepositArguments - arguments for RPC
type DepositArguments struct {
	Holder account.Address `json:"holder"`
	Amount uint64          `json:"amount"`
}

// BalanceReply - a single balance
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Deposit - credit native currency to a holder
func (l *Ledger) Deposit(arguments *DepositArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	l.Log.Infof("Ledger.Deposit: %s  amount: %d", arguments.Holder, arguments.Amount)

	if err := l.Engine.Deposit(arguments.Holder, arguments.Amount); nil != err {
		return err
	}
	reply.Balance = l.Engine.NativeBalance(arguments.Holder)
	return nil
}

// NativeArguments - arguments for RPC
type NativeArguments struct {
	Holder account.Address `json:"holder"`
}

// Native - native currency balance
func (l *Ledger) Native(arguments *NativeArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	reply.Balance = l.Engine.NativeBalance(arguments.Holder)
	return nil
}

// ---

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Holders []account.Address   `json:"holders"`
	IDs     []record.Identifier `json:"ids"`
}

// BalancesReply - result from RPC
type BalancesReply struct {
	Balances []uint64 `json:"balances"`
}

// Balance - pairwise balances
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalancesReply) error {
	if err := ratelimit.LimitN(l.Limiter, len(arguments.IDs), maximumBatchCount); nil != err {
		return err
	}

	balances, err := l.Engine.BalanceOfBatch(arguments.Holders, arguments.IDs)
	if nil != err {
		return err
	}
	reply.Balances = balances
	return nil
}

// ---

// RecordArguments - arguments for RPC
type RecordArguments struct {
	ID record.Identifier `json:"id"`
}

// RecordReply - result from RPC
type RecordReply struct {
	Owner  account.Address `json:"owner"`
	Found  bool            `json:"found"`
	Supply uint64          `json:"supply"`
}

// Record - owner (unique only) and total supply
func (l *Ledger) Record(arguments *RecordArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if arguments.ID.IsUniqueInstance() {
		reply.Owner, reply.Found = l.Engine.OwnerOf(arguments.ID)
	}
	reply.Supply = l.Engine.TotalSupply(arguments.ID)
	return nil
}

// ---

// AllowanceArguments - arguments for RPC
type AllowanceArguments struct {
	Owner   account.Address   `json:"owner"`
	Spender account.Address   `json:"spender"`
	ID      record.Identifier `json:"id"`
}

// AllowanceReply - result from RPC
type AllowanceReply struct {
	Allowance uint64 `json:"allowance"`
	Operator  bool   `json:"operator"`
}

// Allowance - per-record allowance and operator status of spender
func (l *Ledger) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	reply.Allowance = l.Engine.Allowance(arguments.Owner, arguments.Spender, arguments.ID)
	reply.Operator = l.Engine.IsApprovedForAll(arguments.Owner, arguments.Spender)
	return nil
}

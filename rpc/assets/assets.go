// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"sort"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Host - asset operations, implemented by core.Core
type Host interface {
	AssetSupply(token account.Address) (uint64, error)
	AssetBalance(token account.Address, holder account.Address) (uint64, error)
	AssetAllowance(token account.Address, owner account.Address, spender account.Address) (uint64, error)
	AssetTransfer(token account.Address, caller account.Address, to account.Address, amount uint64) error
	AssetApprove(token account.Address, caller account.Address, spender account.Address, amount uint64) error
}

// Token - a fungible asset hosted by this node
type Token interface {
	Address() account.Address
	Symbol() string
}

// Assets - type for RPC calls
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    Host
	Tokens  map[account.Address]Token
}

// New - create assets RPC handler
func New(log *logger.L, host Host, tokens []Token) *Assets {
	m := make(map[account.Address]Token, len(tokens))
	for _, t := range tokens {
		m[t.Address()] = t
	}
	return &Assets{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Host:    host,
		Tokens:  m,
	}
}

func (a *Assets) token(address account.Address) error {
	if _, ok := a.Tokens[address]; !ok {
		return fault.UnknownCurrency
	}
	return nil
}

// ---

// ListArguments - empty arguments
type ListArguments struct{}

// TokenInfo - one hosted asset
type TokenInfo struct {
	Symbol  string          `json:"symbol"`
	Address account.Address `json:"address"`
	Supply  uint64          `json:"supply"`
}

// ListReply - result from RPC
type ListReply struct {
	Tokens []TokenInfo `json:"tokens"`
}

// List - hosted assets in symbol order
func (a *Assets) List(_ *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	reply.Tokens = make([]TokenInfo, 0, len(a.Tokens))
	for address, t := range a.Tokens {
		supply, err := a.Host.AssetSupply(address)
		if nil != err {
			return err
		}
		reply.Tokens = append(reply.Tokens, TokenInfo{
			Symbol:  t.Symbol(),
			Address: address,
			Supply:  supply,
		})
	}
	sort.Slice(reply.Tokens, func(i, j int) bool {
		return reply.Tokens[i].Symbol < reply.Tokens[j].Symbol
	})
	return nil
}

// ---

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Token   account.Address `json:"token"`
	Holder  account.Address `json:"holder"`
	Spender account.Address `json:"spender"`
}

// BalanceReply - result from RPC
type BalanceReply struct {
	Balance   uint64 `json:"balance"`
	Allowance uint64 `json:"allowance"`
}

// Balance - holder balance and, if a spender is given, its allowance
func (a *Assets) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if err := a.token(arguments.Token); nil != err {
		return err
	}
	balance, err := a.Host.AssetBalance(arguments.Token, arguments.Holder)
	if nil != err {
		return err
	}
	reply.Balance = balance
	if !arguments.Spender.IsNull() {
		reply.Allowance, err = a.Host.AssetAllowance(arguments.Token, arguments.Holder, arguments.Spender)
	}
	return err
}

// ---

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Token  account.Address `json:"token"`
	Caller account.Address `json:"caller"`
	To     account.Address `json:"to"`
	Amount uint64          `json:"amount"`
}

// EmptyReply - result from RPC calls that return nothing
type EmptyReply struct{}

// Transfer - move units from the caller
func (a *Assets) Transfer(arguments *TransferArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if err := a.token(arguments.Token); nil != err {
		return err
	}
	return a.Host.AssetTransfer(arguments.Token, arguments.Caller, arguments.To, arguments.Amount)
}

// ApproveArguments - arguments for RPC
type ApproveArguments struct {
	Token   account.Address `json:"token"`
	Caller  account.Address `json:"caller"`
	Spender account.Address `json:"spender"`
	Amount  uint64          `json:"amount"`
}

// Approve - set the allowance of spender, e.g. the escrow
func (a *Assets) Approve(arguments *ApproveArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if err := a.token(arguments.Token); nil != err {
		return err
	}
	return a.Host.AssetApprove(arguments.Token, arguments.Caller, arguments.Spender, arguments.Amount)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/ledger"
)

// MintData - the parameters for a mint request
type MintData struct {
	Caller     account.Address
	Prefix     record.Prefix
	Recipients []account.Address
	Amounts    []uint64 // fungible only
}

// Mint - create new records, returns the new identifiers of unique records
func (c *Client) Mint(mintConfig *MintData) ([]record.Identifier, error) {
	arguments := ledger.MintArguments{
		Caller:     mintConfig.Caller,
		Prefix:     mintConfig.Prefix,
		Recipients: mintConfig.Recipients,
		Amounts:    mintConfig.Amounts,
	}
	reply := &ledger.MintReply{}
	err := c.call("Ledger.Mint", arguments, reply)
	return reply.IDs, err
}

// TransferData - the parameters for a transfer request
type TransferData struct {
	Caller  account.Address
	From    account.Address
	To      account.Address
	IDs     []record.Identifier
	Amounts []uint64
}

// Transfer - move one or more records
func (c *Client) Transfer(transferConfig *TransferData) error {
	arguments := ledger.TransferArguments{
		Caller:  transferConfig.Caller,
		From:    transferConfig.From,
		To:      transferConfig.To,
		IDs:     transferConfig.IDs,
		Amounts: transferConfig.Amounts,
	}
	return c.call("Ledger.Transfer", arguments, &ledger.EmptyReply{})
}

// SetApprovalForAll - grant or revoke an operator
func (c *Client) SetApprovalForAll(caller account.Address, operator account.Address, approved bool) error {
	arguments := ledger.OperatorArguments{
		Caller:   caller,
		Operator: operator,
		Approved: approved,
	}
	return c.call("Ledger.SetApprovalForAll", arguments, &ledger.EmptyReply{})
}

// Deposit - credit the native currency, returns the new balance
func (c *Client) Deposit(holder account.Address, amount uint64) (uint64, error) {
	arguments := ledger.DepositArguments{
		Holder: holder,
		Amount: amount,
	}
	reply := &ledger.BalanceReply{}
	err := c.call("Ledger.Deposit", arguments, reply)
	return reply.Balance, err
}

// Native - balance of the native currency
func (c *Client) Native(holder account.Address) (uint64, error) {
	reply := &ledger.BalanceReply{}
	err := c.call("Ledger.Native", ledger.NativeArguments{Holder: holder}, reply)
	return reply.Balance, err
}

// Balance - holder balances of one record
func (c *Client) Balance(holders []account.Address, id record.Identifier) ([]uint64, error) {
	ids := make([]record.Identifier, len(holders))
	for i := range ids {
		ids[i] = id
	}
	arguments := ledger.BalanceArguments{
		Holders: holders,
		IDs:     ids,
	}
	reply := &ledger.BalancesReply{}
	err := c.call("Ledger.Balance", arguments, reply)
	return reply.Balances, err
}

// Record - owner and supply of a record
func (c *Client) Record(id record.Identifier) (*ledger.RecordReply, error) {
	reply := &ledger.RecordReply{}
	err := c.call("Ledger.Record", ledger.RecordArguments{ID: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/receiver.go -package=mocks github.com/bitmark-inc/registryd/ledger Receiver

// Package ledger - balances, ownership, operators and allowances
//
// Fungible balances are held against the type descriptor identifier.
// Unique instances have a balance of 0 or 1 against their own
// identifier, an owner entry, and are also counted against the
// descriptor identifier so that balance_of(holder, descriptor) gives
// the number of instances of the type the holder owns.
//
// Every mutating method works inside a txn.Context; nothing is
// visible to other operations until the caller commits.
package ledger

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. prefix       = record type prefix as big endian uint32 (4 bytes)
// 4. id           = record identifier as big endian uint64 (8 bytes)
// 5. account      = 20 byte address
// 6. N            = big endian uint64 (8 bytes)
// 7. sequence     = event sequence as big endian uint64 (8 bytes)
//
// Registry:
//
//   T ++ prefix                - type descriptor
//                                data: packed descriptor
//   I ++ prefix                - last instance index allocated
//                                data: N
//   M ++ prefix ++ account     - minting authorisation
//                                data: 0x01
//   J ++ prefix ++ account     - trusted evaluator
//                                data: 0x01
//
// Ledger:
//
//   B ++ account ++ id         - balance, absent means zero
//                                data: N
//   O ++ id                    - owner of a unique record
//                                data: account
//   Y ++ id                    - total supply
//                                data: N
//   P ++ owner ++ operator     - operator approval
//                                data: 0x01
//   W ++ owner ++ spender ++ id
//                              - allowance
//                                data: N
//   V ++ account               - native value balance
//                                data: N
//
// Lifecycle and escrow:
//
//   L ++ id                    - lifecycle state, absent means available
//                                data: state(1 byte) ++ evaluator account
//   X ++ id                    - burned marker
//                                data: 0x01
//   S ++ id                    - sale option
//                                data: packed option
//
// Events and globals:
//
//   E ++ sequence              - committed events
//                                data: JSON
//   G ++ name                  - global counters (type nonce, event sequence)
//                                data: N
//
// Testing:
//   Z ++ key                   - testing data
package storage

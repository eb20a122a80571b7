// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - addresses of holders, components and assets
//
// An address is 20 bytes.  The text form is base58 of a varint code,
// the address bytes and the first four bytes of their SHA3-256 hash.
package account

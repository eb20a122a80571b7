// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - record identifiers and type descriptors
//
// An identifier is 64 bits:
//
//   bit 63       - set for a unique kind type
//   bits 62..32  - type nonce, allocated sequentially from 1
//   bits 31..0   - instance index, zero for the type descriptor
//
// The high 32 bits taken together are the type prefix.
package record

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// miscellaneous constants
const (
	AddressLength  = 20
	checksumLength = 4

	// leading varint of the encoded form
	addressCode = 0x31
)

// Address - identity of a holder, a component or an external asset
//
// the zero value is the null address
type Address [AddressLength]byte

// Null - the null address, also used as the native currency marker
var Null = Address{}

// NewAddress - derive a deterministic address from a name, used for
// in-process components such as evaluators and the escrow itself
func NewAddress(name string) Address {
	digest := sha3.Sum256([]byte(name))
	a := Address{}
	copy(a[:], digest[len(digest)-AddressLength:])
	return a
}

// AddressFromBytes - convert a raw 20 byte value
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.InvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromBase58 - decode and verify the checksum of a text address
func AddressFromBase58(s string) (Address, error) {
	a := Address{}

	decoded, err := base58.Decode(s)
	if nil != err {
		return a, fault.InvalidAddress
	}

	code, n := util.FromVarint64(decoded)
	if 0 == n || addressCode != code {
		return a, fault.InvalidAddress
	}
	if len(decoded) != n+AddressLength+checksumLength {
		return a, fault.InvalidAddressLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return a, fault.InvalidAddressChecksum
	}

	copy(a[:], decoded[n:checksumStart])
	return a, nil
}

// IsNull - true for the null address
func (a Address) IsNull() bool {
	return Null == a
}

// Bytes - the raw 20 bytes
func (a Address) Bytes() []byte {
	return a[:]
}

// String - base58 text with checksum
func (a Address) String() string {
	buffer := util.ToVarint64(addressCode)
	buffer = append(buffer, a[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - hex form for debug output
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - the null address is an empty string
func (a Address) MarshalText() ([]byte, error) {
	if a.IsNull() {
		return []byte{}, nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText - convert from text, an empty string is the null address
func (a *Address) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*a = Null
		return nil
	}
	decoded, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

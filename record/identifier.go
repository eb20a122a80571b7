// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/registryd/fault"
)

// Kind - fungible or unique
type Kind uint8

// the kinds of record
const (
	Fungible Kind = iota
	Unique
)

const (
	indexBits  = 32
	uniqueFlag = Prefix(1) << 31

	// MaximumNonce - largest type nonce
	MaximumNonce = uint32(uniqueFlag) - 1

	// MaximumIndex - largest instance index
	MaximumIndex = ^uint32(0)

	// PrefixLength - bytes in a packed prefix
	PrefixLength = 4

	// IdentifierLength - bytes in a packed identifier
	IdentifierLength = 8
)

// String - kind name
func (k Kind) String() string {
	switch k {
	case Fungible:
		return "fungible"
	case Unique:
		return "unique"
	default:
		return "*unknown*"
	}
}

// MarshalText - kind name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - from kind name
func (k *Kind) UnmarshalText(s []byte) error {
	switch string(s) {
	case "fungible":
		*k = Fungible
	case "unique":
		*k = Unique
	default:
		return fault.InvalidArgument
	}
	return nil
}

// Prefix - type prefix
type Prefix uint32

// Identifier - record identifier
type Identifier uint64

// NewPrefix - create the prefix for a type nonce
func NewPrefix(nonce uint32, kind Kind) (Prefix, error) {
	if 0 == nonce || nonce > MaximumNonce {
		return 0, fault.InvalidPrefix
	}
	p := Prefix(nonce)
	if Unique == kind {
		p |= uniqueFlag
	}
	return p, nil
}

// Kind - kind carried by the prefix
func (p Prefix) Kind() Kind {
	if 0 != p&uniqueFlag {
		return Unique
	}
	return Fungible
}

// Nonce - sequence number of the type
func (p Prefix) Nonce() uint32 {
	return uint32(p &^ uniqueFlag)
}

// Identifier - the type descriptor identifier
func (p Prefix) Identifier() Identifier {
	return Identifier(p) << indexBits
}

// Instance - the identifier of one instance of the type
func (p Prefix) Instance(index uint32) Identifier {
	return p.Identifier() | Identifier(index)
}

// Bytes - big endian packed prefix
func (p Prefix) Bytes() []byte {
	buffer := make([]byte, PrefixLength)
	binary.BigEndian.PutUint32(buffer, uint32(p))
	return buffer
}

// String - hex form
func (p Prefix) String() string {
	return fmt.Sprintf("%08x", uint32(p))
}

// MarshalText - hex form
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - from hex form
func (p *Prefix) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 16, 32)
	if nil != err {
		return fault.InvalidPrefix
	}
	*p = Prefix(n)
	return nil
}

// PrefixFromBytes - unpack a big endian prefix
func PrefixFromBytes(buffer []byte) (Prefix, error) {
	if PrefixLength != len(buffer) {
		return 0, fault.InvalidPrefix
	}
	return Prefix(binary.BigEndian.Uint32(buffer)), nil
}

// Prefix - the type part of an identifier
func (id Identifier) Prefix() Prefix {
	return Prefix(id >> indexBits)
}

// Index - the instance part of an identifier
func (id Identifier) Index() uint32 {
	return uint32(id)
}

// IsNull - the zero identifier, skipped in batches
func (id Identifier) IsNull() bool {
	return 0 == id
}

// IsDescriptor - true if the instance index is zero
func (id Identifier) IsDescriptor() bool {
	return 0 == id.Index()
}

// IsUniqueInstance - one instance of a unique type
func (id Identifier) IsUniqueInstance() bool {
	return Unique == id.Prefix().Kind() && !id.IsDescriptor()
}

// Bytes - big endian packed identifier
func (id Identifier) Bytes() []byte {
	buffer := make([]byte, IdentifierLength)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// String - hex form
func (id Identifier) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// MarshalText - hex form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - from hex form
func (id *Identifier) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 16, 64)
	if nil != err {
		return fault.InvalidIdentifier
	}
	*id = Identifier(n)
	return nil
}

// IdentifierFromBytes - unpack a big endian identifier
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	if IdentifierLength != len(buffer) {
		return 0, fault.InvalidIdentifier
	}
	return Identifier(binary.BigEndian.Uint64(buffer)), nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// Descriptor - type metadata
type Descriptor struct {
	Prefix  Prefix          `json:"prefix"`
	Kind    Kind            `json:"kind"`
	Name    string          `json:"name"`
	URI     string          `json:"uri"`
	Creator account.Address `json:"creator"`
}

// Pack - creator ++ name(varint bytes) ++ uri(varint bytes)
//
// the prefix is the database key so it is not repeated
func (d *Descriptor) Pack() []byte {
	buffer := make([]byte, 0, account.AddressLength+len(d.Name)+len(d.URI)+4)
	buffer = append(buffer, d.Creator[:]...)
	buffer = util.AppendBytes(buffer, []byte(d.Name))
	buffer = util.AppendBytes(buffer, []byte(d.URI))
	return buffer
}

// UnpackDescriptor - reverse of Pack
func UnpackDescriptor(prefix Prefix, buffer []byte) (*Descriptor, error) {
	if len(buffer) < account.AddressLength {
		return nil, fault.TruncatedDescriptor
	}

	d := &Descriptor{
		Prefix: prefix,
		Kind:   prefix.Kind(),
	}
	copy(d.Creator[:], buffer[:account.AddressLength])
	n := account.AddressLength

	name, count := util.ReadBytes(buffer[n:])
	if 0 == count {
		return nil, fault.TruncatedDescriptor
	}
	n += count

	uri, count := util.ReadBytes(buffer[n:])
	if 0 == count {
		return nil, fault.TruncatedDescriptor
	}

	d.Name = string(name)
	d.URI = string(uri)
	return d, nil
}

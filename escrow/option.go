// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"time"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// Option - an outstanding offer to sell one unique record
//
// a null buyer means any buyer, a null currency means native value
type Option struct {
	Seller   account.Address `json:"seller"`
	Buyer    account.Address `json:"buyer"`
	Currency account.Address `json:"currency"`
	Price    uint64          `json:"price"`
	Expires  time.Time       `json:"expires"`
}

// Pack - seller, buyer, currency, varint price, varint expiry nanoseconds
//
// the expiry keeps full precision so that a stored option expires at
// exactly the time that was checked when it was listed
func (o *Option) Pack() []byte {
	buffer := make([]byte, 0, 3*account.AddressLength+20)
	buffer = append(buffer, o.Seller[:]...)
	buffer = append(buffer, o.Buyer[:]...)
	buffer = append(buffer, o.Currency[:]...)
	buffer = append(buffer, util.ToVarint64(o.Price)...)
	buffer = append(buffer, util.ToVarint64(uint64(o.Expires.UnixNano()))...)
	return buffer
}

// UnpackOption - reverse of Pack
func UnpackOption(buffer []byte) (*Option, error) {
	if len(buffer) < 3*account.AddressLength+2 {
		return nil, fault.TruncatedOption
	}

	o := &Option{}
	n := 0
	for _, a := range []*account.Address{&o.Seller, &o.Buyer, &o.Currency} {
		copy(a[:], buffer[n:n+account.AddressLength])
		n += account.AddressLength
	}

	price, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.TruncatedOption
	}
	n += count
	o.Price = price

	expires, count := util.FromVarint64(buffer[n:])
	if 0 == count || n+count != len(buffer) {
		return nil, fault.TruncatedOption
	}
	o.Expires = time.Unix(0, int64(expires)).UTC()

	return o, nil
}

// IsOpen - any buyer may take the option
func (o *Option) IsOpen() bool {
	return o.Buyer.IsNull()
}

// HasExpired - true at or after the expiry time
func (o *Option) HasExpired(now time.Time) bool {
	return !now.Before(o.Expires)
}

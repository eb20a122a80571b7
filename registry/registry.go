// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - record types and instance index allocation
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/txn"
)

// Handles - storage pools used by the registry
type Handles struct {
	Descriptors   *storage.PoolHandle
	TypeIndex     *storage.PoolHandle
	MintApprovals *storage.PoolHandle
	Globals       *storage.PoolHandle
}

// Registry - type descriptors
type Registry struct {
	log      *logger.L
	pools    Handles
	creators map[account.Address]struct{}
}

// key in the globals pool
var nonceKey = []byte("type-nonce")

// New - create a registry
//
// a non-empty creators list restricts who may create types
func New(log *logger.L, pools Handles, creators []account.Address) *Registry {
	r := &Registry{
		log:   log,
		pools: pools,
	}
	if len(creators) > 0 {
		r.creators = make(map[account.Address]struct{})
		for _, c := range creators {
			r.creators[c] = struct{}{}
		}
	}
	return r
}

// CreateType - allocate a new type descriptor owned by caller
func (r *Registry) CreateType(ctx *txn.Context, caller account.Address, name string, kind record.Kind) (record.Prefix, error) {
	if nil != r.creators {
		if _, ok := r.creators[caller]; !ok {
			return 0, fault.Unauthorized
		}
	}
	if "" == name || (record.Fungible != kind && record.Unique != kind) {
		return 0, fault.InvalidArgument
	}

	nonce, _ := ctx.GetN(r.pools.Globals, nonceKey)
	if nonce >= uint64(record.MaximumNonce) {
		return 0, fault.Overflow
	}
	nonce += 1

	prefix, err := record.NewPrefix(uint32(nonce), kind)
	if nil != err {
		return 0, err
	}

	d := record.Descriptor{
		Prefix:  prefix,
		Kind:    kind,
		Name:    name,
		Creator: caller,
	}
	ctx.Put(r.pools.Descriptors, prefix.Bytes(), d.Pack())
	ctx.PutN(r.pools.Globals, nonceKey, nonce)

	ctx.Emit(event.Event{
		Kind:     event.TypeCreated,
		Record:   prefix.Identifier(),
		Operator: caller,
		Name:     name,
	})

	r.log.Debugf("create type: %s  kind: %s  name: %q  creator: %s", prefix, kind, name, caller)
	return prefix, nil
}

// Descriptor - fetch the descriptor for a prefix
func (r *Registry) Descriptor(rd storage.Reader, prefix record.Prefix) (*record.Descriptor, error) {
	buffer := rd.Get(r.pools.Descriptors, prefix.Bytes())
	if nil == buffer {
		return nil, fault.UnknownType
	}
	return record.UnpackDescriptor(prefix, buffer)
}

// SetURI - change the metadata URI, creator only
func (r *Registry) SetURI(ctx *txn.Context, caller account.Address, prefix record.Prefix, uri string) error {
	d, err := r.Descriptor(ctx, prefix)
	if nil != err {
		return err
	}
	if caller != d.Creator {
		return fault.Forbidden
	}

	d.URI = uri
	ctx.Put(r.pools.Descriptors, prefix.Bytes(), d.Pack())

	ctx.Emit(event.Event{
		Kind:     event.URIChanged,
		Record:   prefix.Identifier(),
		Operator: caller,
		URI:      uri,
	})
	return nil
}

// SetMintApproval - grant or revoke unique minting rights, creator only
func (r *Registry) SetMintApproval(ctx *txn.Context, caller account.Address, prefix record.Prefix, minter account.Address, allowed bool) error {
	d, err := r.Descriptor(ctx, prefix)
	if nil != err {
		return err
	}
	if caller != d.Creator {
		return fault.Forbidden
	}
	if minter.IsNull() {
		return fault.NullAddress
	}

	key := append(prefix.Bytes(), minter[:]...)
	if allowed {
		ctx.Put(r.pools.MintApprovals, key, []byte{1})
	} else {
		ctx.Delete(r.pools.MintApprovals, key)
	}

	ctx.Emit(event.Event{
		Kind:     event.MintApprovalChanged,
		Record:   prefix.Identifier(),
		Operator: caller,
		To:       minter,
		Approved: allowed,
	})
	return nil
}

// IsMintApproved - check the minting authorisation set
func (r *Registry) IsMintApproved(rd storage.Reader, prefix record.Prefix, minter account.Address) bool {
	return rd.Has(r.pools.MintApprovals, append(prefix.Bytes(), minter[:]...))
}

// AllocateIndex - take the next instance identifier of a type
//
// indexes are never reused
func (r *Registry) AllocateIndex(ctx *txn.Context, prefix record.Prefix) (record.Identifier, error) {
	last, _ := ctx.GetN(r.pools.TypeIndex, prefix.Bytes())
	if last >= uint64(record.MaximumIndex) {
		return 0, fault.Overflow
	}
	last += 1
	ctx.PutN(r.pools.TypeIndex, prefix.Bytes(), last)
	return prefix.Instance(uint32(last)), nil
}

// NextIndex - the index the next mint will receive
func (r *Registry) NextIndex(rd storage.Reader, prefix record.Prefix) uint64 {
	last, _ := rd.GetN(r.pools.TypeIndex, prefix.Bytes())
	return last + 1
}

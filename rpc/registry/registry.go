// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/engine"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for RPC calls
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create registry RPC handler
func New(log *logger.L, e engine.Engine) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Engine:  e,
	}
}

// ---

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller account.Address `json:"caller"`
	Name   string          `json:"name"`
	Kind   record.Kind     `json:"kind"`
}

// CreateReply - result from RPC
type CreateReply struct {
	Prefix record.Prefix `json:"prefix"`
}

// Create - register a new record type
func (r *Registry) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Registry.Create: %q kind: %s", arguments.Name, arguments.Kind)

	prefix, err := r.Engine.CreateType(arguments.Caller, arguments.Name, arguments.Kind)
	if nil != err {
		return err
	}
	reply.Prefix = prefix
	return nil
}

// ---

// SetURIArguments - arguments for RPC
type SetURIArguments struct {
	Caller account.Address `json:"caller"`
	Prefix record.Prefix   `json:"prefix"`
	URI    string          `json:"uri"`
}

// EmptyReply - result from RPC calls that return nothing
type EmptyReply struct{}

// SetURI - change the metadata URI of a type
func (r *Registry) SetURI(arguments *SetURIArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	return r.Engine.SetURI(arguments.Caller, arguments.Prefix, arguments.URI)
}

// ---

// PermissionArguments - arguments for RPC
type PermissionArguments struct {
	Caller  account.Address `json:"caller"`
	Prefix  record.Prefix   `json:"prefix"`
	Subject account.Address `json:"subject"`
	Allowed bool            `json:"allowed"`
}

// SetMintApproval - grant or revoke minting on a type
func (r *Registry) SetMintApproval(arguments *PermissionArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	return r.Engine.SetMintApproval(arguments.Caller, arguments.Prefix, arguments.Subject, arguments.Allowed)
}

// TrustEvaluator - grant or revoke evaluator trust on a type
func (r *Registry) TrustEvaluator(arguments *PermissionArguments, _ *EmptyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	return r.Engine.TrustEvaluator(arguments.Caller, arguments.Prefix, arguments.Subject, arguments.Allowed)
}

// ---

// TypeArguments - arguments for RPC
type TypeArguments struct {
	Prefix  record.Prefix   `json:"prefix"`
	Subject account.Address `json:"subject"`
}

// TypeReply - result from RPC
type TypeReply struct {
	Descriptor *record.Descriptor `json:"descriptor"`
	NextIndex  uint64             `json:"nextIndex"`
	Minter     bool               `json:"minter"`
	Trusted    bool               `json:"trusted"`
}

// Type - descriptor of a type; the permission flags refer to the subject
func (r *Registry) Type(arguments *TypeArguments, reply *TypeReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	descriptor, err := r.Engine.Type(arguments.Prefix)
	if nil != err {
		return err
	}

	reply.Descriptor = descriptor
	reply.NextIndex = r.Engine.NextIndex(arguments.Prefix)
	if !arguments.Subject.IsNull() {
		reply.Minter = r.Engine.IsMintApproved(arguments.Prefix, arguments.Subject)
		reply.Trusted = r.Engine.IsTrusted(arguments.Prefix, arguments.Subject)
	}
	return nil
}

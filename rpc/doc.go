// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring registryd services
//
// standard golang RPC services can be used on the client side to
// access these services; the services trust the caller field of each
// request, so the listener must only be reachable by trusted front ends
package rpc

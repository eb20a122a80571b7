// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/rpc/assets"
	"github.com/bitmark-inc/registryd/rpc/engine"
	"github.com/bitmark-inc/registryd/rpc/escrow"
	"github.com/bitmark-inc/registryd/rpc/evaluators"
	"github.com/bitmark-inc/registryd/rpc/ledger"
	"github.com/bitmark-inc/registryd/rpc/lifecycle"
	"github.com/bitmark-inc/registryd/rpc/node"
	"github.com/bitmark-inc/registryd/rpc/registry"
)

// Services - what the RPC server exposes
type Services struct {
	Engine   engine.Engine
	Assets   assets.Host
	Programs map[string]evaluators.Program
	Tokens   []assets.Token
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(registry.New(log, services.Engine))
	_ = server.Register(ledger.New(log, services.Engine))
	_ = server.Register(lifecycle.New(log, services.Engine))
	_ = server.Register(escrow.New(log, services.Engine))
	_ = server.Register(node.New(log, start, version, rpcCount, services.Engine))
	_ = server.Register(evaluators.New(log, services.Programs))
	_ = server.Register(assets.New(log, services.Assets, services.Tokens))

	return server
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/core"
	"github.com/bitmark-inc/registryd/evaluator"
	"github.com/bitmark-inc/registryd/publish"
	"github.com/bitmark-inc/registryd/rpc"
	"github.com/bitmark-inc/registryd/rpc/assets"
	"github.com/bitmark-inc/registryd/rpc/evaluators"
	"github.com/bitmark-inc/registryd/rpc/server"
	"github.com/bitmark-inc/registryd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	escrow, _ := theConfiguration.escrow()
	creators, _ := theConfiguration.creators()

	core.RegisterMetrics()

	log.Info("initialise core")
	registry, err := core.New(db, core.Options{
		Creators:  creators,
		Escrow:    escrow,
		Publisher: publish.Queue{},
		Clock:     time.Now,
	})
	if nil != err {
		log.Criticalf("core initialise error: %s", err)
		exitwithstatus.Message("core initialise error: %s", err)
	}

	// hosted evaluator programs
	programs := make(map[string]evaluators.Program)
	for _, e := range theConfiguration.Evaluators {
		settings, _ := e.settings()
		p, err := evaluator.New(logger.New("evaluator"), settings, registry, time.Now)
		if nil != err {
			log.Criticalf("evaluator: %q  error: %s", e.Name, err)
			exitwithstatus.Message("evaluator: %q  error: %s", e.Name, err)
		}
		err = p.Restore()
		if nil != err {
			log.Criticalf("evaluator: %q  restore error: %s", e.Name, err)
			exitwithstatus.Message("evaluator: %q  restore error: %s", e.Name, err)
		}
		registry.RegisterEvaluator(p)
		programs[e.Name] = p
		log.Infof("evaluator: %q  address: %s  prefix: %s", e.Name, p.Address(), settings.Prefix)
	}

	// hosted fungible assets, allocated on first start only
	tokens, err := hostTokens(registry, theConfiguration.Assets)
	if nil != err {
		log.Criticalf("assets error: %s", err)
		exitwithstatus.Message("assets error: %s", err)
	}
	for _, t := range tokens {
		log.Infof("asset: %q  address: %s", t.Symbol(), t.Address())
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	services := server.Services{
		Engine:   registry,
		Assets:   registry,
		Programs: programs,
		Tokens:   tokens,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, services)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// prometheus scrape endpoint
	if "" != theConfiguration.Metrics.Listen {
		go func() {
			log.Infof("metrics listener on: %s", theConfiguration.Metrics.Listen)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			err := http.ListenAndServe(theConfiguration.Metrics.Listen, mux)
			log.Errorf("metrics listener error: %s", err)
		}()
	}

	shutdown := make(chan struct{})
	defer close(shutdown)

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats(shutdown)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// host each asset, minting its opening allocations the first time
func hostTokens(c *core.Core, configured []AssetType) ([]assets.Token, error) {
	tokens := make([]assets.Token, 0, len(configured))
	seen := make(map[string]struct{})

	for _, a := range configured {
		if "" == a.Symbol {
			return nil, fmt.Errorf("asset with blank symbol")
		}
		if _, ok := seen[a.Symbol]; ok {
			return nil, fmt.Errorf("asset: %q  duplicate symbol", a.Symbol)
		}
		seen[a.Symbol] = struct{}{}

		owner, err := a.owner()
		if nil != err {
			return nil, fmt.Errorf("asset: %q  owner: %q  error: %s", a.Symbol, a.Owner, err)
		}

		allocations := make(map[account.Address]uint64, len(a.Allocations))
		for holder, amount := range a.Allocations {
			to, err := account.AddressFromBase58(holder)
			if nil != err {
				return nil, fmt.Errorf("asset: %q  holder: %q  error: %s", a.Symbol, holder, err)
			}
			allocations[to] = amount
		}

		t, err := c.HostAsset(a.Symbol, owner, allocations)
		if nil != err {
			return nil, fmt.Errorf("asset: %q  error: %s", a.Symbol, err)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

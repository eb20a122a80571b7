// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed events over ZeroMQ
//
// each event is sent as a three part message: "event", the event kind
// and the JSON encoded event
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/background"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/zmqutil"
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`

	// tagged public keys of permitted subscribers, empty for any
	Subscribers []string `gluamapper:"subscribers" json:"subscribers"`
}

type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	background *background.T

	initialised bool
}

var globalData publishData

// Initialise - bind the broadcast sockets and start the sender
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses, events are not published")
		globalData.brdc.initialise(globalData.log)
		globalData.initialised = true
		return nil
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}

	err = zmqutil.StartAuthentication()
	if nil != err {
		return err
	}
	err = zmqutil.AllowClients(broadcastDomain, configuration.Subscribers)
	if nil != err {
		globalData.log.Errorf("subscribers error: %s", err)
		return err
	}

	globalData.brdc.initialise(globalData.log)
	err = globalData.brdc.bind(privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")
	globalData.background = background.Start(background.Processes{&globalData.brdc}, nil)

	return nil
}

// Finalise - stop the sender and close the sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if nil != globalData.background {
		globalData.background.Stop()
		globalData.background = nil
	}
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Queue - the core's view of the broadcaster
type Queue struct{}

// Publish - queue events for broadcast, never blocks
func (Queue) Publish(events []event.Event) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return
	}
	for _, e := range events {
		globalData.brdc.enqueue(e)
	}
}

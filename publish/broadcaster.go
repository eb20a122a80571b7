// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/zmqutil"
)

const (
	queueSize       = 1000
	broadcastDomain = "broadcast"
	eventTag        = "event"
)

type broadcaster struct {
	log     *logger.L
	queue   chan event.Event
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	dropped counter.Counter
}

func (brdc *broadcaster) initialise(log *logger.L) {
	brdc.log = log
	brdc.queue = make(chan event.Event, queueSize)
}

func (brdc *broadcaster) bind(privateKey []byte, publicKey []byte, broadcast []string) error {
	socket4, socket6, err := zmqutil.NewBind(brdc.log, zmq.PUB, broadcastDomain, privateKey, publicKey, broadcast)
	if nil != err {
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6
	return nil
}

// a full queue drops the event rather than stall the core
func (brdc *broadcaster) enqueue(e event.Event) bool {
	select {
	case brdc.queue <- e:
		return true
	default:
		n := brdc.dropped.Increment()
		brdc.log.Warnf("queue full, dropped event: %d  total dropped: %d", e.Sequence, n)
		return false
	}
}

// Run - background loop sending queued events
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	brdc.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case e := <-brdc.queue:
			brdc.send(e)
		}
	}

	for _, s := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil != s {
			s.Close()
		}
	}
	brdc.log.Info("stopped")
}

func (brdc *broadcaster) send(e event.Event) {
	message, err := encode(e)
	if nil != err {
		brdc.log.Errorf("encode event: %d  error: %s", e.Sequence, err)
		return
	}

	for _, s := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == s {
			continue
		}
		_, err := s.SendMessage(message...)
		if nil != err {
			brdc.log.Errorf("send event: %d  error: %s", e.Sequence, err)
		}
	}
}

func encode(e event.Event) ([]interface{}, error) {
	data, err := json.Marshal(e)
	if nil != err {
		return nil, err
	}
	return []interface{}{eventTag, string(e.Kind), data}, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

var oneTimeAuthStart sync.Once

// StartAuthentication - start the ZAP handler, once only
func StartAuthentication() error {
	err := error(nil)
	oneTimeAuthStart.Do(func() {
		zmq.AuthSetVerbose(false)
		err = zmq.AuthStart()
	})
	return err
}

// AllowClients - restrict a ZAP domain to the given tagged public keys
//
// an empty list lets any CURVE client connect
func AllowClients(zapDomain string, clients []string) error {
	if 0 == len(clients) {
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
		return nil
	}

	allowed, err := clientKeys(clients)
	if nil != err {
		return err
	}
	zmq.AuthCurveAdd(zapDomain, allowed...)
	return nil
}

// the ZAP handler matches Z85 text
func clientKeys(clients []string) ([]string, error) {
	allowed := make([]string, 0, len(clients))
	for _, c := range clients {
		key, err := ReadPublicKey(c)
		if nil != err {
			return nil, err
		}
		allowed = append(allowed, zmq.Z85encode(string(key)))
	}
	return allowed, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - TLS material for RPC tests
package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var (
	once        sync.Once
	certificate string
	key         string
)

func generate() {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, privateKey, err := certgen.NewTLSCertPair("registryd test certificate", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	certificate = string(cert)
	key = string(privateKey)
}

// Certificate - PEM encoded self-signed certificate
func Certificate() string {
	once.Do(generate)
	return certificate
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	once.Do(generate)
	return key
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/registryd/fault"
)

// CanonicalIPandPort - normalise an IP:port for binding
//
// the scheme prefix (e.g. "tcp://") is prepended to the result and the
// boolean is true for an IPv6 address
func CanonicalIPandPort(scheme string, hostPort string) (string, bool, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", false, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", false, fault.InvalidPortNumber
	}

	if nil != IP.To4() {
		return scheme + IP.String() + ":" + strconv.Itoa(numericPort), false, nil
	}
	return scheme + "[" + IP.String() + "]:" + strconv.Itoa(numericPort), true, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// registry-cli - command line client for registryd
//
// the caller identity is passed as a plain field so this tool is
// meant for operators on the trusted side of the RPC listener
//
// e.g. create a record type, mint to alice and list it for sale:
//
//   registry-cli -a admin create -n deed
//   registry-cli -a admin mint -x 80000001 -t alice
//   registry-cli -a alice sell -i 8000000100000001 -p 100 -e 72h
package main

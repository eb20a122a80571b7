// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/core"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/storage"
)

var (
	admin = account.NewAddress("admin")
	alice = account.NewAddress("alice")
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "registryd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "registryd.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	prefix, _ := record.NewPrefix(3, record.Unique)

	dir, fileName := writeConfiguration(t, fmt.Sprintf(`
local M = {}
M.data_directory = "."
M.pidfile = "registryd.pid"
M.creators = { %q }
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}
M.evaluators = {
    {
        name = "kyc",
        admin = %q,
        prefix = %q,
        start = "2020-03-01T00:00:00Z",
        maximum_applications = 10,
    },
}
M.assets = {
    { symbol = "USD", owner = %q, allocations = { [%q] = 1000 } },
}
return M
`, admin, admin, prefix, admin, alice))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	absolute, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Join(absolute, "registryd.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(absolute, "data", "registry.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(absolute, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, filepath.Join(absolute, "publish.private"), options.Publishing.PrivateKey, "wrong publish key")

	escrow, err := options.escrow()
	assert.Nil(t, err, "wrong escrow")
	assert.Equal(t, account.NewAddress(defaultEscrowName), escrow, "wrong default escrow")

	creators, err := options.creators()
	assert.Nil(t, err, "wrong creators")
	assert.Equal(t, []account.Address{admin}, creators, "wrong creators")

	assert.Equal(t, 1, len(options.Evaluators), "wrong evaluator count")
	settings, err := options.Evaluators[0].settings()
	assert.Nil(t, err, "wrong settings")
	assert.Equal(t, admin, settings.Admin, "wrong admin")
	assert.Equal(t, prefix, settings.Prefix, "wrong prefix")
	assert.Equal(t, time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC), settings.Start.UTC(), "wrong start")
	assert.True(t, settings.End.IsZero(), "unexpected end")
	assert.Equal(t, 10, settings.MaximumApplications, "wrong maximum")

	c, teardown := memoryCore(t)
	defer teardown()

	tokens, err := hostTokens(c, options.Assets)
	assert.Nil(t, err, "wrong hostTokens")
	assert.Equal(t, 1, len(tokens), "wrong token count")
	balance, err := c.AssetBalance(tokens[0].Address(), alice)
	assert.Nil(t, err, "wrong balance")
	assert.Equal(t, uint64(1000), balance, "wrong allocation")
}

func memoryCore(t *testing.T) (*core.Core, func()) {
	fixtures.SetupTestLogger()

	db, err := storage.Open("")
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	c, err := core.New(db, core.Options{Escrow: account.NewAddress(defaultEscrowName)})
	if nil != err {
		t.Fatalf("core error: %s", err)
	}
	return c, func() {
		db.Close()
		fixtures.TeardownTestLogger()
	}
}

func TestGetConfigurationBadEvaluator(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.evaluators = {
    { name = "kyc", admin = "not-an-address", prefix = "80000001", start = "2020-03-01T00:00:00Z" },
}
return M
`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "bad admin accepted")
}

func TestGetConfigurationNoDataDirectory(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return {}`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory accepted")
}

func TestHostTokensDuplicate(t *testing.T) {
	c, teardown := memoryCore(t)
	defer teardown()

	_, err := hostTokens(c, []AssetType{
		{Symbol: "USD", Owner: admin.String()},
		{Symbol: "USD", Owner: admin.String()},
	})
	assert.NotNil(t, err, "duplicate symbol accepted")
}

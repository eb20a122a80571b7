// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/configuration"
	"github.com/bitmark-inc/registryd/evaluator"
	"github.com/bitmark-inc/registryd/publish"
	"github.com/bitmark-inc/registryd/rpc/listeners"
	"github.com/bitmark-inc/registryd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "registry.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "registryd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultEscrowName = "registryd:escrow"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// MetricsType - prometheus scrape endpoint, blank to disable
type MetricsType struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// EvaluatorType - one hosted evaluator program
//
// times are RFC3339, a blank end means no end
type EvaluatorType struct {
	Name                string `gluamapper:"name" json:"name"`
	Admin               string `gluamapper:"admin" json:"admin"`
	Prefix              string `gluamapper:"prefix" json:"prefix"`
	Start               string `gluamapper:"start" json:"start"`
	End                 string `gluamapper:"end" json:"end"`
	MaximumApplications int    `gluamapper:"maximum_applications" json:"maximum_applications"`
}

// AssetType - one hosted fungible asset with its opening allocations
type AssetType struct {
	Symbol      string            `gluamapper:"symbol" json:"symbol"`
	Owner       string            `gluamapper:"owner" json:"owner"`
	Allocations map[string]uint64 `gluamapper:"allocations" json:"allocations"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Escrow   string   `gluamapper:"escrow" json:"escrow"`
	Creators []string `gluamapper:"creators" json:"creators"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Metrics    MetricsType                `gluamapper:"metrics" json:"metrics"`
	Evaluators []EvaluatorType            `gluamapper:"evaluators" json:"evaluators"`
	Assets     []AssetType                `gluamapper:"assets" json:"assets"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// check identities early so a typing mistake stops startup
	if _, err := options.escrow(); nil != err {
		return nil, fmt.Errorf("escrow: %q  error: %s", options.Escrow, err)
	}
	if _, err := options.creators(); nil != err {
		return nil, err
	}
	for _, e := range options.Evaluators {
		if _, err := e.settings(); nil != err {
			return nil, fmt.Errorf("evaluator: %q  error: %s", e.Name, err)
		}
	}

	// done
	return options, nil
}

// blank derives a fixed escrow identity
func (c *Configuration) escrow() (account.Address, error) {
	if "" == c.Escrow {
		return account.NewAddress(defaultEscrowName), nil
	}
	return account.AddressFromBase58(c.Escrow)
}

func (c *Configuration) creators() ([]account.Address, error) {
	creators := make([]account.Address, 0, len(c.Creators))
	for _, s := range c.Creators {
		a, err := account.AddressFromBase58(s)
		if nil != err {
			return nil, fmt.Errorf("creator: %q  error: %s", s, err)
		}
		creators = append(creators, a)
	}
	return creators, nil
}

func (e EvaluatorType) settings() (evaluator.Settings, error) {
	s := evaluator.Settings{
		Name:                e.Name,
		MaximumApplications: e.MaximumApplications,
	}

	admin, err := account.AddressFromBase58(e.Admin)
	if nil != err {
		return s, err
	}
	s.Admin = admin

	err = s.Prefix.UnmarshalText([]byte(e.Prefix))
	if nil != err {
		return s, err
	}

	s.Start, err = time.Parse(time.RFC3339, e.Start)
	if nil != err {
		return s, err
	}
	if "" != e.End {
		s.End, err = time.Parse(time.RFC3339, e.End)
		if nil != err {
			return s, err
		}
	}
	return s, nil
}

func (a AssetType) owner() (account.Address, error) {
	return account.AddressFromBase58(a.Owner)
}

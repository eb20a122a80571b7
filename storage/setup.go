// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Descriptors     *PoolHandle `prefix:"T"`
	TypeIndex       *PoolHandle `prefix:"I"`
	MintApprovals   *PoolHandle `prefix:"M"`
	Evaluators      *PoolHandle `prefix:"J"`
	Balances        *PoolHandle `prefix:"B"`
	Owners          *PoolHandle `prefix:"O"`
	Supply          *PoolHandle `prefix:"Y"`
	Operators       *PoolHandle `prefix:"P"`
	Allowances      *PoolHandle `prefix:"W"`
	NativeBalances  *PoolHandle `prefix:"V"`
	Lifecycle       *PoolHandle `prefix:"L"`
	Burned          *PoolHandle `prefix:"X"`
	Options         *PoolHandle `prefix:"S"`
	AssetBalances   *PoolHandle `prefix:"A"`
	AssetAllowances *PoolHandle `prefix:"C"`
	AssetSupply     *PoolHandle `prefix:"D"`
	Events          *PoolHandle `prefix:"E"`
	Globals         *PoolHandle `prefix:"G"`
	TestData        *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// Database - an open ledger database and its pools
type Database struct {
	Pool pools

	db  *leveldb.DB
	trx *transaction
	log *logger.L
}

// Open - open up the database connection
//
// an empty name gives a volatile in-memory database
func Open(name string) (*Database, error) {
	log := logger.New("storage")

	var db *leveldb.DB
	var err error
	if "" == name {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), nil)
	} else {
		opt := &ldb_opt.Options{
			ErrorIfExist:   false,
			ErrorIfMissing: false,
		}
		db, err = leveldb.OpenFile(name, opt)
	}
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}
	switch version {
	case 0:
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	case currentDBVersion:
	default:
		log.Criticalf("database version: %d  current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseVersionNotSupported
	}

	database := &Database{
		db:  db,
		log: log,
	}
	database.trx = newTransaction(db, newCache())

	// this will be a struct type
	poolType := reflect.TypeOf(database.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&database.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened: %q", name)

	ok = true // prevent db close
	return database, nil
}

// Close - close the database connection
func (d *Database) Close() {
	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
	}
}

// Begin - start the single write transaction
//
// fails if a previous transaction has not been committed or aborted
func (d *Database) Begin() (Transaction, error) {
	err := d.trx.Begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fault.WrongDatabaseVersionFormat
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

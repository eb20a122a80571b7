// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type StateError GenericError
type QuantityError GenericError
type ArgumentError GenericError

type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// ledger errors - keep in alphabetic order within each class
var (
	Forbidden          = AuthorizationError("forbidden")
	TransferRejected   = AuthorizationError("transfer rejected by receiver")
	Unauthorized       = AuthorizationError("unauthorized")
	UntrustedEvaluator = AuthorizationError("evaluator is not trusted for this record type")
	WrongBuyer         = AuthorizationError("wrong buyer")

	ApplicationRejected = StateError("application rejected by evaluator")
	InvalidTransition   = StateError("invalid lifecycle transition")
	OptionExpired       = StateError("option expired")
	OptionNotFound      = StateError("option not found")
	RecordLocked        = StateError("record locked")
	RecordNotAvailable  = StateError("record not available")
	RecordNotRemovable  = StateError("record not removable")

	InsufficientAllowance = QuantityError("insufficient allowance")
	InsufficientBalance   = QuantityError("insufficient balance")
	Overflow              = QuantityError("quantity overflow")
	PaymentFailed         = QuantityError("payment failed")
	StaleAllowance        = QuantityError("stale allowance")

	CurrencyMismatch = ArgumentError("currency mismatch")
	InvalidArgument  = ArgumentError("invalid argument")
	InvalidExpiry    = ArgumentError("invalid expiry")
	NullAddress      = ArgumentError("null address")
	UnknownCurrency  = ArgumentError("unknown currency")
	UnknownType      = ArgumentError("unknown record type")
)

// infrastructure errors - keep in alphabetic order
var (
	AlreadyInitialised          = ExistsError("already initialised")
	AssetExists                 = ExistsError("asset already hosted")
	CertificateFileExists       = ExistsError("certificate file already exists")
	CertificateFileNotFound     = NotFoundError("certificate file not found")
	ConfigurationFileNotFound   = NotFoundError("configuration file not found")
	KeyFileAlreadyExists        = ExistsError("key file already exists")
	KeyFileNotFound             = NotFoundError("key file not found")
	UnknownEvaluator            = NotFoundError("unknown evaluator program")
	InvalidAddress              = InvalidError("invalid address")
	InvalidAddressChecksum      = InvalidError("invalid address checksum")
	InvalidAddressLength        = InvalidError("invalid address length")
	InvalidConfiguration        = InvalidError("invalid configuration")
	InvalidCount                = InvalidError("invalid count")
	InvalidCursor               = InvalidError("invalid cursor")
	InvalidIdentifier           = InvalidError("invalid identifier")
	InvalidIpAddress            = InvalidError("invalid IP address")
	InvalidLoggerChannel        = InvalidError("invalid logger channel")
	InvalidPortNumber           = InvalidError("invalid port number")
	InvalidPrefix               = InvalidError("invalid prefix")
	InvalidPrivateKeyFile       = InvalidError("invalid private key file")
	InvalidPublicKeyFile        = InvalidError("invalid public key file")
	MissingParameters           = InvalidError("missing parameters")
	NotInitialised              = NotFoundError("not initialised")
	RateLimiting                = ProcessError("rate limiting")
	TransactionAlreadyInUse     = ProcessError("transaction already in use")
	TransactionNotInUse         = ProcessError("transaction not in use")
	TruncatedDescriptor         = InvalidError("truncated type descriptor")
	TruncatedOption             = InvalidError("truncated sale option")
	WrongDatabaseVersionFormat  = InvalidError("wrong database version format")
	DatabaseVersionNotSupported = InvalidError("database version not supported")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e StateError) Error() string         { return string(e) }
func (e QuantityError) Error() string      { return string(e) }
func (e ArgumentError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
func IsErrQuantity(e error) bool      { _, ok := e.(QuantityError); return ok }
func IsErrArgument(e error) bool      { _, ok := e.(ArgumentError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LockError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnsupportedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolation     = ProcessError("node balance outside -1…+1")
	ErrCountMismatch        = ProcessError("node count does not match tree count")
	ErrInvalidConfiguration = InvalidError("invalid configuration")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvariantBroken      = ProcessError("tree invariant broken")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrLockNotHeld          = LockError("lock not held by owner")
	ErrNilComparator        = InvalidError("comparator is nil")
	ErrNilKey               = InvalidError("key is nil")
	ErrNilSource            = InvalidError("source is nil")
	ErrNoSuchElement        = NotFoundError("no more elements")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOrderViolation       = ProcessError("keys out of order")
	ErrParentLink           = ProcessError("inconsistent parent link")
	ErrReadOnlyView         = UnsupportedError("view is read only")
	ErrSizeMismatch         = LengthError("keys and values differ in length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e LengthError) Error() string      { return string(e) }
func (e LockError) Error() string        { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnsupportedError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool      { _, ok := e.(LengthError); return ok }
func IsErrLock(e error) bool        { _, ok := e.(LockError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrUnsupported(e error) bool { _, ok := e.(UnsupportedError); return ok }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/orderedmap/fault"
)

var (
	ErrExistsOne      = fault.ExistsError("exists one ")
	ErrExistsTwo      = fault.ExistsError("exists two")
	ErrInvalidOne     = fault.InvalidError("invalid one")
	ErrInvalidTwo     = fault.InvalidError("invalid two")
	ErrLengthOne      = fault.LengthError("length one")
	ErrLengthTwo      = fault.LengthError("length two")
	ErrLockOne        = fault.LockError("lock one")
	ErrLockTwo        = fault.LockError("lock two")
	ErrNotFoundOne    = fault.NotFoundError("not found one")
	ErrNotFoundTwo    = fault.NotFoundError("not found two")
	ErrProcessOne     = fault.ProcessError("process one")
	ErrProcessTwo     = fault.ProcessError("process two")
	ErrUnsupportedOne = fault.UnsupportedError("unsupported one")
	ErrUnsupportedTwo = fault.UnsupportedError("unsupported two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err         error
		exists      bool
		invalid     bool
		length      bool
		lock        bool
		notFound    bool
		process     bool
		unsupported bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false, false},
		{ErrLockOne, false, false, false, true, false, false, false},
		{ErrLockTwo, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, false, true, false},
		{ErrUnsupportedOne, false, false, false, false, false, false, true},
		{ErrUnsupportedTwo, false, false, false, false, false, false, true},

		{fault.ErrNilKey, false, true, false, false, false, false, false},
		{fault.ErrSizeMismatch, false, false, true, false, false, false, false},
		{fault.ErrLockNotHeld, false, false, false, true, false, false, false},
		{fault.ErrKeyNotFound, false, false, false, false, true, false, false},
		{fault.ErrNoSuchElement, false, false, false, false, true, false, false},
		{fault.ErrBalanceViolation, false, false, false, false, false, true, false},
		{fault.ErrReadOnlyView, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrLock(err) != e.lock {
			t.Errorf("%d: expected 'lock' == %v for err = %v", i, e.lock, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrUnsupported(err) != e.unsupported {
			t.Errorf("%d: expected 'unsupported' == %v for err = %v", i, e.unsupported, err)
		}
	}
}

// errors are single instances so plain comparison works
func TestIdentity(t *testing.T) {
	var err error = fault.ErrKeyNotFound
	if err != fault.ErrKeyNotFound {
		t.Fatalf("error instance changed: %v", err)
	}
	if err == fault.ErrNoSuchElement {
		t.Fatalf("distinct instances compare equal: %v", err)
	}
	if "key not found" != err.Error() {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reentrant - an exclusive lock that the same owner may
// acquire repeatedly
//
// Go has no goroutine identity so the holder is named by an explicit
// Owner token.  A caller obtains one token with NewOwner and passes it
// to every nested call that must run under the same acquisition.
// The lock must be released by the same owner once for each time it
// was acquired.
package reentrant

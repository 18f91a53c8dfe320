// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package concurrent - an AVL map that may be shared between
// goroutines
//
// Every operation, including pure reads, runs with a single exclusive
// lock held.  Batch operations hold the lock once for the whole batch
// but are not atomic: a batch reports success or failure for each
// element and earlier elements stay applied whatever happens to later
// ones.
//
// Keys and Values return copies taken under the lock.  Iterating the
// underlying tree is only possible inside WithLock.
package concurrent

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use the concurrent package to
//       serialise access.
//
// The tree maps unique keys to values.  Keys are ordered either by
// their natural order (New) or by a caller supplied three way
// comparison (NewFunc).  Inserting an existing key fails and leaves
// the stored value unchanged, use Replace to overwrite a value.
//
// Insertion retraces upwards through the parent pointers.  Deletion
// records its descent in an explicit path buffer and retraces from
// that buffer, so neither operation recurses.  Delete does not copy
// keys or values between nodes, a node keeps its identity until its
// own key is deleted, so an iterator that has already moved past a
// node is not disturbed when that node is deleted.
package avl

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlstress - drive a shared ordered map from many goroutines and
// verify it after each round
//
// every worker owns a disjoint range of integer keys; in each round it
// adds its keys in batches, confirms duplicates are refused, reads them
// back, replaces the odd keys and removes the even keys.  The final
// round also removes whatever is left, so a clean run ends with an
// empty map.
//
// usage:
//
//	avlstress --config-file=avlstress.conf
package main

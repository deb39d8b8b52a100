// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node carries a balance factor of height(right) - height(left)
// which is kept in the range -1 … +1 by rotations after every insert
// or delete.  Insert and delete rebalance by climbing the parent
// pointers from the point of change, so no recursion is needed.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Delete does not copy
// data between nodes, a node that has two children is exchanged with
// its in-order predecessor before removal so that a node always keeps
// its own key and value.
package avl

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
)

// Search - find the node holding a specific key, nil if absent
func (tree *Tree) Search(key Item) *Node {
	return search(key, tree.root)
}

func search(key Item, p *Node) *Node {
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Find - value associated with a key and whether the key is present
func (tree *Tree) Find(key Item) (interface{}, bool) {
	p := search(key, tree.root)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Get - value associated with a key, error if it is not present
func (tree *Tree) Get(key Item) (interface{}, error) {
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

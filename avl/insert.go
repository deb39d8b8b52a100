// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing node with the same key
//
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	p := tree.root
	if nil == p {
		tree.root = newNode(key, value)
		tree.count += 1
		return true
	}

	// descend to the attachment point
	for {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil == p.left {
				q := newNode(key, value)
				q.up = p
				p.left = q
				tree.count += 1
				tree.insertFix(p, q)
				return true
			}
			p = p.left
		case -1: // p.key < key
			if nil == p.right {
				q := newNode(key, value)
				q.up = p
				p.right = q
				tree.count += 1
				tree.insertFix(p, q)
				return true
			}
			p = p.right
		default:
			p.value = value
			return false
		}
	}
}

// climb from a newly grown branch adjusting balance factors until
// the height of a sub-tree is unchanged or a rotation is made
func (tree *Tree) insertFix(p *Node, child *Node) {
	for nil != p {
		if child == p.left {
			p.balance -= 1 // left branch has grown
		} else {
			p.balance += 1 // right branch has grown
		}

		switch p.balance {
		case 0:
			return
		case -1, +1:
			child = p
			p = p.up
		default:
			// a rotation after insert always restores the
			// previous sub-tree height
			tree.rebalance(p)
			return
		}
	}
}

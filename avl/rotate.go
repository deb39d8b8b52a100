// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
)

// point the link that referred to old (a child link of parent, or
// the root if parent is nil) at p
func (tree *Tree) replaceChild(parent *Node, old *Node, p *Node) {
	switch {
	case nil == parent:
		tree.root = p
	case old == parent.left:
		parent.left = p
	default:
		parent.right = p
	}
	if nil != p {
		p.up = parent
	}
}

// promote p.right into the position of p
//
//	    p                r
//	   / \              / \
//	  a   r     →      p   c
//	     / \          / \
//	    b   c        a   b
//
// balance factors are not changed
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right
	if nil == r {
		fault.Panicf("rotate left: node %v has no right child", p.key)
	}

	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}

	tree.replaceChild(p.up, p, r)

	r.left = p
	p.up = r
}

// promote p.left into the position of p, the mirror of rotateLeft
func (tree *Tree) rotateRight(p *Node) {
	l := p.left
	if nil == l {
		fault.Panicf("rotate right: node %v has no left child", p.key)
	}

	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}

	tree.replaceChild(p.up, p, l)

	l.right = p
	p.up = l
}

// restore the balance of a node whose balance factor has reached ±2
//
// returns the node now at the top of the sub-tree and whether the
// sub-tree is one level lower than it was before the node became
// unbalanced; the height is unchanged only for the single rotation
// where the taller child was itself balanced, which can only occur
// during delete
func (tree *Tree) rebalance(p *Node) (*Node, bool) {
	switch p.balance {

	case -2: // left branch too high
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			tree.rotateRight(p)
			if 0 == p1.balance {
				p.balance = -1
				p1.balance = +1
				return p1, false
			}
			p.balance = 0
			p1.balance = 0
			return p1, true
		}

		// double LR rotation
		p2 := p1.right
		tree.rotateLeft(p1)
		tree.rotateRight(p)
		switch p2.balance {
		case -1:
			p.balance = +1
			p1.balance = 0
		case +1:
			p.balance = 0
			p1.balance = -1
		default:
			p.balance = 0
			p1.balance = 0
		}
		p2.balance = 0
		return p2, true

	case +2: // right branch too high
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			tree.rotateLeft(p)
			if 0 == p1.balance {
				p.balance = +1
				p1.balance = -1
				return p1, false
			}
			p.balance = 0
			p1.balance = 0
			return p1, true
		}

		// double RL rotation
		p2 := p1.left
		tree.rotateRight(p1)
		tree.rotateLeft(p)
		switch p2.balance {
		case +1:
			p.balance = -1
			p1.balance = 0
		case -1:
			p.balance = 0
			p1.balance = +1
		default:
			p.balance = 0
			p1.balance = 0
		}
		p2.balance = 0
		return p2, true

	default:
		fault.Panicf("rebalance: node %v has balance %d", p.key, p.balance)
	}
	return p, false
}

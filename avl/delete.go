// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or nil and false if
// the key was not in the tree
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	q := search(key, tree.root)
	if nil == q { // key not in tree
		return nil, false
	}
	value := q.value // preserve the value part

	// move q to a position with at most one child
	if nil != q.left && nil != q.right {
		tree.swapNodes(q, q.left.last())
	}

	child := q.left
	if nil == child {
		child = q.right
	}

	parent := q.up
	diff := 0
	if nil != parent {
		if q == parent.left {
			diff = +1 // left branch has shrunk
		} else {
			diff = -1 // right branch has shrunk
		}
	}
	tree.replaceChild(parent, q, child)

	freeNode(q)
	tree.count -= 1

	tree.removeFix(parent, diff)

	return value, true
}

// climb from a shrunken branch adjusting balance factors until the
// height of a sub-tree is unchanged
//
// diff is +1 when the left branch of p has shrunk and -1 when the
// right branch has shrunk
func (tree *Tree) removeFix(p *Node, diff int) {
	for nil != p {
		p.balance += diff

		switch p.balance {
		case -1, +1:
			return // height unchanged
		case 0:
			// height reduced, continue
		default:
			top, shrunk := tree.rebalance(p)
			if !shrunk {
				return
			}
			p = top
		}

		parent := p.up
		if nil != parent {
			if p == parent.left {
				diff = +1
			} else {
				diff = -1
			}
		}
		p = parent
	}
}

// exchange the positions of two nodes in the tree, so that each node
// keeps its own key and value; balance factors belong to positions
// so they are exchanged too
func (tree *Tree) swapNodes(a *Node, b *Node) {
	if a == b {
		return
	}
	// when adjacent, make b the child
	if b == a.up {
		a, b = b, a
	}

	aUp, aLeft, aRight := a.up, a.left, a.right
	bUp, bLeft, bRight := b.up, b.left, b.right

	if bUp == a {
		// b takes the place of a and a becomes its child
		tree.replaceChild(aUp, a, b)
		if aLeft == b {
			b.left = a
			b.right = aRight
		} else {
			b.left = aLeft
			b.right = a
		}
		a.up = b
	} else {
		// sides are recorded first as a parent may hold both
		aIsLeft := nil != aUp && a == aUp.left
		bIsLeft := nil != bUp && b == bUp.left

		setChild(tree, aUp, aIsLeft, b)
		setChild(tree, bUp, bIsLeft, a)
		b.left = aLeft
		b.right = aRight
	}
	a.left = bLeft
	a.right = bRight

	for _, c := range []*Node{b.left, b.right} {
		if nil != c {
			c.up = b
		}
	}
	for _, c := range []*Node{a.left, a.right} {
		if nil != c {
			c.up = a
		}
	}

	a.balance, b.balance = b.balance, a.balance
}

// attach p to the given side of parent, or as root if no parent
func setChild(tree *Tree, parent *Node, isLeft bool, p *Node) {
	switch {
	case nil == parent:
		tree.root = p
	case isLeft:
		parent.left = p
	default:
		parent.right = p
	}
	p.up = parent
}

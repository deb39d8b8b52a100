// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlbst/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return nil == checkup(tree.root, nil)
}

// Check - verify parent links, key order, balance factors and count
func (tree *Tree) Check() error {
	if err := checkup(tree.root, nil); nil != err {
		return err
	}
	n, err := checkOrder(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		fmt.Printf("count: %d  actual nodes: %d\n", tree.count, n)
		return fault.ErrCountMismatch
	}
	_, err = checkBalance(tree.root)
	return err
}

// internal: consistency checker
func checkup(p *Node, up *Node) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return fault.ErrParentLink
	}
	if err := checkup(p.left, p); nil != err {
		return err
	}
	return checkup(p.right, p)
}

// internal: in-order walk requiring strictly increasing keys, returns
// the number of nodes
func checkOrder(root *Node) (int, error) {
	n := 0
	var previous *Node
	for p := root.first(); nil != p; p = p.Next() {
		if nil != previous && -1 != previous.key.Compare(p.key) {
			fmt.Printf("out of order: %v  before: %v\n", previous.key, p.key)
			return n, fault.ErrOrder
		}
		previous = p
		n += 1
	}
	return n, nil
}

// internal: returns measured height of the sub-tree
func checkBalance(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	if r-l != p.balance || p.balance < -1 || p.balance > 1 {
		fmt.Printf("fail at node: %v  balance: %d  heights: [%d,%d]\n", p.key, p.balance, l, r)
		return 0, fault.ErrBalance
	}
	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}

func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}

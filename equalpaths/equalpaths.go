// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check that every leaf of a plain binary tree
// lies at the same depth
package equalpaths

// Node - a plain binary tree node, no balance and no parent link
type Node struct {
	Value interface{}
	Left  *Node
	Right *Node
}

// EqualPaths - true if the tree is empty or all of its leaves are at
// the same depth
func EqualPaths(root *Node) bool {
	leafDepth := -1
	return equalPaths(root, 0, &leafDepth)
}

// the first leaf found fixes the depth all later leaves must match
func equalPaths(p *Node, depth int, leafDepth *int) bool {
	if nil == p {
		return true
	}
	if nil == p.Left && nil == p.Right {
		if -1 == *leafDepth {
			*leafDepth = depth
			return true
		}
		return depth == *leafDepth
	}
	if !equalPaths(p.Left, depth+1, leafDepth) {
		return false
	}
	return equalPaths(p.Right, depth+1, leafDepth)
}

// Leaves - depth of each leaf in left to right order
func Leaves(root *Node) []int {
	depths := []int{}
	var walk func(p *Node, depth int)
	walk = func(p *Node, depth int) {
		if nil == p {
			return
		}
		if nil == p.Left && nil == p.Right {
			depths = append(depths, depth)
			return
		}
		walk(p.Left, depth+1)
		walk(p.Right, depth+1)
	}
	walk(root, 0)
	return depths
}

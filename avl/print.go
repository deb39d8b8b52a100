// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// where a sub-tree hangs from its parent
type side int

const (
	atRoot side = iota
	onLeft
	onRight
)

// connector drawn before each key
var connector = [...]string{
	atRoot:  "|------+ ",
	onLeft:  "\\------+ ",
	onRight: "/------+ ",
}

// Print - display an ASCII graphic representation of the tree on
// stdout, right sub-trees above left ones
//
// returns the maximum depth of the tree
func (tree *Tree) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - as Print but writing to w
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	return fprint(w, tree.root, "", atRoot, printData)
}

func fprint(w io.Writer, p *Node, prefix string, s side, printData bool) int {
	if nil == p {
		return 0
	}

	// continue the vertical bar only where the path turns
	indent := func(turn side) string {
		if turn == s {
			return prefix + "|      "
		}
		return prefix + "       "
	}

	rd := fprint(w, p.right, indent(onLeft), onRight, printData)

	var up interface{}
	if nil != p.up {
		up = p.up.key
	}
	if printData {
		fmt.Fprintf(w, "%s%s%v → %v ^%v %+2d\n", prefix, connector[s], p.key, p.value, up, p.balance)
	} else {
		fmt.Fprintf(w, "%s%s%v ^%v\n", prefix, connector[s], p.key, up)
	}

	ld := fprint(w, p.left, indent(onRight), onLeft, printData)

	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

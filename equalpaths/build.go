// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package equalpaths

// Build - construct a tree from tokens in level order
//
// each present node consumes the next two tokens as its left and
// right children; "-", "nil" and "null" mark an absent node.  Tokens
// beyond the last present node are ignored.
func Build(tokens []string) *Node {
	if 0 == len(tokens) || absent(tokens[0]) {
		return nil
	}

	root := &Node{Value: tokens[0]}
	queue := []*Node{root}
	i := 1
	for len(queue) > 0 && i < len(tokens) {
		p := queue[0]
		queue = queue[1:]

		if !absent(tokens[i]) {
			p.Left = &Node{Value: tokens[i]}
			queue = append(queue, p.Left)
		}
		i += 1
		if i >= len(tokens) {
			break
		}
		if !absent(tokens[i]) {
			p.Right = &Node{Value: tokens[i]}
			queue = append(queue, p.Right)
		}
		i += 1
	}
	return root
}

func absent(token string) bool {
	switch token {
	case "-", "nil", "null":
		return true
	default:
		return false
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/equalpaths"
	"github.com/bitmark-inc/avlbst/fault"
)

// Executor - applies operations to a tree
type Executor struct {
	Tree    *avl.Tree
	Numeric bool      // keys are integers instead of strings
	Writer  io.Writer // results
	Log     *logger.L // optional
}

// Run - execute operations in order, stopping at the first failure
func (e *Executor) Run(operations []Operation) error {
	for _, op := range operations {
		if err := e.Execute(op); nil != err {
			if nil != e.Log {
				e.Log.Errorf("line %d: %s", op.Line, err)
			}
			return &LineError{Line: op.Line, Err: err}
		}
	}
	if nil != e.Log {
		e.Log.Infof("executed: %d operations  items: %d", len(operations), e.Tree.Count())
	}
	return nil
}

// Execute - a single operation
//
// absent keys are reported but are only an error for a strict get
func (e *Executor) Execute(op Operation) error {
	if nil != e.Log {
		e.Log.Debugf("line %d: kind: %d  arguments: %q", op.Line, op.Kind, op.Arguments)
	}

	switch op.Kind {

	case Insert:
		key, err := e.key(op.Arguments[0])
		if nil != err {
			return err
		}
		value := ""
		if len(op.Arguments) > 1 {
			value = op.Arguments[1]
		}
		if e.Tree.Insert(key, value) {
			fmt.Fprintf(e.Writer, "insert %v: added\n", key)
		} else {
			fmt.Fprintf(e.Writer, "insert %v: updated\n", key)
		}

	case Delete:
		key, err := e.key(op.Arguments[0])
		if nil != err {
			return err
		}
		if value, ok := e.Tree.Delete(key); ok {
			fmt.Fprintf(e.Writer, "delete %v: %v\n", key, value)
		} else {
			fmt.Fprintf(e.Writer, "delete %v: absent\n", key)
		}

	case Find:
		key, err := e.key(op.Arguments[0])
		if nil != err {
			return err
		}
		if value, ok := e.Tree.Find(key); ok {
			fmt.Fprintf(e.Writer, "find %v: %v\n", key, value)
		} else {
			fmt.Fprintf(e.Writer, "find %v: absent\n", key)
		}

	case Get:
		key, err := e.key(op.Arguments[0])
		if nil != err {
			return err
		}
		value, err := e.Tree.Get(key)
		if nil != err {
			return err
		}
		fmt.Fprintf(e.Writer, "get %v: %v\n", key, value)

	case Count:
		fmt.Fprintf(e.Writer, "count: %d\n", e.Tree.Count())

	case Height:
		fmt.Fprintf(e.Writer, "height: %d\n", e.Tree.Height())

	case List:
		for p := e.Tree.First(); nil != p; p = p.Next() {
			fmt.Fprintf(e.Writer, "%v → %v\n", p.Key(), p.Value())
		}

	case Print:
		e.Tree.Fprint(e.Writer, true)

	case Check:
		if err := e.Tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(e.Writer, "check: ok\n")

	case EqualPaths:
		root := equalpaths.Build(op.Arguments)
		fmt.Fprintf(e.Writer, "equal-paths: %v\n", equalpaths.EqualPaths(root))

	default:
		return fault.ErrUnknownOperation
	}
	return nil
}

// convert key text to the configured key type
func (e *Executor) key(s string) (avl.Item, error) {
	if !e.Numeric {
		return avl.StringItem(s), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return avl.IntItem(n), nil
}

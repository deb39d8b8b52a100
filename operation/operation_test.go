// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/operation"
)

const script = `
# build a small tree
insert 10 ten
insert 20 twenty
insert 30 thirty   and some more
insert 20 TWENTY

find 20
find 25
delete 10
delete 10
count
height
list
check
equal-paths R A B - - C D
`

const expected = `insert 10: added
insert 20: added
insert 30: added
insert 20: updated
find 20: TWENTY
find 25: absent
delete 10: ten
delete 10: absent
count: 2
height: 2
20 → TWENTY
30 → thirty   and some more
check: ok
equal-paths: false
`

func TestParse(t *testing.T) {
	ops, err := operation.Parse(strings.NewReader(script))
	assert.Nil(t, err, "parse error")
	assert.Equal(t, 13, len(ops), "operation count")

	first := ops[0]
	assert.Equal(t, operation.Insert, first.Kind, "first kind")
	assert.Equal(t, 3, first.Line, "first line")
	assert.Equal(t, []string{"10", "ten"}, first.Arguments, "first arguments")

	assert.Equal(t, []string{"30", "thirty   and some more"}, ops[2].Arguments, "value with spaces")
	assert.Equal(t, operation.EqualPaths, ops[12].Kind, "last kind")
}

func TestParseErrors(t *testing.T) {
	items := []struct {
		text string
		line int
		err  error
	}{
		{"insert 1 a\nfrobnicate 2\n", 2, fault.ErrUnknownOperation},
		{"\n\n# comment\ndelete\n", 4, fault.ErrMissingArgument},
		{"get\n", 1, fault.ErrMissingArgument},
	}
	for i, item := range items {
		ops, err := operation.Parse(strings.NewReader(item.text))
		assert.Nil(t, ops, "%d: operations", i)
		lineError, ok := err.(*operation.LineError)
		if !ok {
			t.Fatalf("%d: unexpected error: %v", i, err)
		}
		assert.Equal(t, item.line, lineError.Line, "%d: line", i)
		assert.Equal(t, item.err, lineError.Err, "%d: error", i)
	}
}

func TestRun(t *testing.T) {
	ops, err := operation.Parse(strings.NewReader(script))
	assert.Nil(t, err, "parse error")

	buffer := &bytes.Buffer{}
	e := operation.Executor{
		Tree:    avl.New(),
		Numeric: true,
		Writer:  buffer,
	}
	err = e.Run(ops)
	assert.Nil(t, err, "run error")
	assert.Equal(t, expected, buffer.String(), "output")
}

func TestStrictGetFails(t *testing.T) {
	ops, err := operation.Parse(strings.NewReader("insert a 1\nget a\nget b\ncount\n"))
	assert.Nil(t, err, "parse error")

	buffer := &bytes.Buffer{}
	e := operation.Executor{
		Tree:   avl.New(),
		Writer: buffer,
	}
	err = e.Run(ops)
	lineError, ok := err.(*operation.LineError)
	if !ok {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 3, lineError.Line, "failing line")
	assert.True(t, fault.IsErrNotFound(lineError.Err), "not found class")
	assert.Equal(t, "insert a: added\nget a: 1\n", buffer.String(), "output before failure")
}

func TestInvalidNumericKey(t *testing.T) {
	e := operation.Executor{
		Tree:    avl.New(),
		Numeric: true,
		Writer:  &bytes.Buffer{},
	}
	err := e.Execute(operation.Operation{Kind: operation.Insert, Line: 1, Arguments: []string{"x1", "v"}})
	assert.Equal(t, fault.ErrInvalidKey, err, "invalid key")
	assert.True(t, e.Tree.IsEmpty(), "tree unchanged")
}

func TestPrint(t *testing.T) {
	buffer := &bytes.Buffer{}
	e := operation.Executor{
		Tree:    avl.New(),
		Numeric: true,
		Writer:  buffer,
	}
	for _, k := range []string{"1", "2", "3"} {
		e.Execute(operation.Operation{Kind: operation.Insert, Arguments: []string{k}})
	}
	buffer.Reset()
	err := e.Execute(operation.Operation{Kind: operation.Print})
	assert.Nil(t, err, "print error")
	assert.Contains(t, buffer.String(), "|------+ 2 →  ^<nil> +0", "root line")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avlbst/fault"
)

// Kind - the type of an operation
type Kind int

// operation kinds
const (
	Insert Kind = iota
	Delete
	Find
	Get
	Count
	Height
	List
	Print
	Check
	EqualPaths
)

// name and minimum number of arguments for each kind
var kinds = map[string]struct {
	kind      Kind
	arguments int
}{
	"insert":      {Insert, 1},
	"delete":      {Delete, 1},
	"find":        {Find, 1},
	"get":         {Get, 1},
	"count":       {Count, 0},
	"height":      {Height, 0},
	"list":        {List, 0},
	"print":       {Print, 0},
	"check":       {Check, 0},
	"equal-paths": {EqualPaths, 0},
}

// Operation - a single parsed line of a script
type Operation struct {
	Kind      Kind
	Line      int
	Arguments []string
}

// LineError - an error tied to a script line
type LineError struct {
	Line int
	Err  error
}

// Error - the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Parse - read a script into a list of operations
func Parse(r io.Reader) ([]Operation, error) {
	operations := []Operation{}
	scanner := bufio.NewScanner(r)
	line := 0

scan_lines:
	for scanner.Scan() {
		line += 1
		text := strings.TrimSpace(scanner.Text())
		if "" == text || '#' == text[0] {
			continue scan_lines
		}
		fields := strings.Fields(text)
		k, ok := kinds[strings.ToLower(fields[0])]
		if !ok {
			return nil, &LineError{Line: line, Err: fault.ErrUnknownOperation}
		}
		arguments := fields[1:]
		if len(arguments) < k.arguments {
			return nil, &LineError{Line: line, Err: fault.ErrMissingArgument}
		}

		// insert keeps the value text intact
		if Insert == k.kind && len(arguments) > 1 {
			value := strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
			value = strings.TrimSpace(strings.TrimPrefix(value, arguments[0]))
			arguments = []string{arguments[0], value}
		}

		operations = append(operations, Operation{
			Kind:      k.kind,
			Line:      line,
			Arguments: arguments,
		})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/fault"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "fault")
	if nil != err {
		panic(fmt.Sprintf("temp dir error: %s", err))
	}
	logging := logger.Configuration{
		Directory: dir,
		File:      "fault.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// the error classes can be distinguished
func TestClasses(t *testing.T) {
	items := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{fault.ExistsError("exists"), true, false, false, false},
		{fault.InvalidError("invalid"), false, true, false, false},
		{fault.NotFoundError("not found"), false, false, true, false},
		{fault.ProcessError("process"), false, false, false, true},
		{fault.GenericError("generic"), false, false, false, false},
		{fault.ErrAlreadyInitialised, true, false, false, false},
		{fault.ErrInvalidKey, false, true, false, false},
		{fault.ErrUnknownOperation, false, true, false, false},
		{fault.ErrKeyNotFound, false, false, true, false},
		{fault.ErrScriptNotFound, false, false, true, false},
		{fault.ErrBalance, false, false, false, true},
		{fault.ErrParentLink, false, false, false, true},
		{fmt.Errorf("plain"), false, false, false, false},
	}

	for i, item := range items {
		assert.Equal(t, item.exists, fault.IsErrExists(item.err), "%d: exists: %v", i, item.err)
		assert.Equal(t, item.invalid, fault.IsErrInvalid(item.err), "%d: invalid: %v", i, item.err)
		assert.Equal(t, item.notFound, fault.IsErrNotFound(item.err), "%d: not found: %v", i, item.err)
		assert.Equal(t, item.process, fault.IsErrProcess(item.err), "%d: process: %v", i, item.err)
	}
}

func TestInitialise(t *testing.T) {
	assert.Nil(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")
	fault.Criticalf("logged to file: %d", 1)
	fault.Finalise()

	assert.Nil(t, fault.Initialise(), "initialise after finalise")
	fault.Finalise()
	fault.Finalise()
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("node %d has no child", 5)
	}, "panic value")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("no error", nil) }, "nil error")
	assert.PanicsWithValue(t, "lookup failed with error: key not found", func() {
		fault.PanicIfError("lookup", fault.ErrKeyNotFound)
	}, "panic value")
}

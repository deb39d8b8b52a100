// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/fault"
)

const testConfig = `
local M = {}
M.data_directory = "."
M.workload = {
    rounds = 2,
    total = 50,
    deletions = 10,
    key_length = 6,
}
M.logging = {
    directory = "logs",
    levels = {
        main = "debug",
    },
}
return M
`

func writeConfig(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "avlsoak")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfig(t, testConfig)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, 2, c.Workload.Rounds, "rounds")
	assert.Equal(t, 50, c.Workload.Total, "total")
	assert.Equal(t, 10, c.Workload.Deletions, "deletions")
	assert.Equal(t, 6, c.Workload.KeyLength, "key length")
	assert.Equal(t, defaultCheckEvery, c.Workload.CheckEvery, "default check interval")
	assert.Equal(t, "test.conf", c.Workload.Seed, "default seed")

	assert.Equal(t, filepath.Join(dir, "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "default log file")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "main level")

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"return { data_directory = '.', workload = { rounds = 0 } }", fault.ErrInvalidCount},
		{"return { data_directory = '.', workload = { key_length = 99 } }", fault.ErrInvalidKey},
		{"return 42", fault.ErrInvalidConfiguration},
	}
	for i, item := range items {
		dir, fileName := writeConfig(t, item.text)
		_, err := getConfiguration(fileName)
		assert.Equal(t, item.err, err, "%d: error", i)
		os.RemoveAll(dir)
	}

	dir, fileName := writeConfig(t, "return { data_directory = '' }")
	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "empty data directory")
	os.RemoveAll(dir)
}

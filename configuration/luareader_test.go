// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/configuration"
	"github.com/bitmark-inc/avlbst/fault"
)

type loggingType struct {
	Directory string            `gluamapper:"directory"`
	Size      int               `gluamapper:"size"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	Name    string      `gluamapper:"name"`
	Rounds  int         `gluamapper:"rounds"`
	Keys    []string    `gluamapper:"keys"`
	Logging loggingType `gluamapper:"logging"`
}

const luaText = `
local M = {}
M.name = "soak-" .. suffix
M.rounds = 3 * 4
M.keys = { "a", "b", "c" }
M.logging = {
    directory = "log",
    size = 1048576,
    levels = {
        DEFAULT = "info",
        soak = "debug",
    },
}
return M
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, luaText)
	defer cleanup()

	config := &testConfiguration{
		Rounds: 1,
	}
	err := configuration.ParseConfigurationFile(fileName, config, map[string]string{"suffix": "test"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "soak-test", config.Name, "name")
	assert.Equal(t, 12, config.Rounds, "rounds")
	assert.Equal(t, []string{"a", "b", "c"}, config.Keys, "keys")
	assert.Equal(t, "log", config.Logging.Directory, "log directory")
	assert.Equal(t, 1048576, config.Logging.Size, "log size")
	assert.Equal(t, "debug", config.Logging.Levels["soak"], "soak level")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "default level")
}

func TestDefaultsRetained(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { name = "only" }`)
	defer cleanup()

	config := &testConfiguration{
		Rounds: 7,
	}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "only", config.Name, "name")
	assert.Equal(t, 7, config.Rounds, "default rounds")
}

func TestInvalidTarget(t *testing.T) {
	fileName, cleanup := writeFile(t, `return {}`)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer")
}

func TestNoTableReturned(t *testing.T) {
	fileName, cleanup := writeFile(t, `x = 1`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{}, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "no table")
}

func TestLuaError(t *testing.T) {
	fileName, cleanup := writeFile(t, `return {`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{}, nil)
	assert.NotNil(t, err, "syntax error")
}

func TestMissingFile(t *testing.T) {
	err := configuration.ParseConfigurationFile("/no/such/file.conf", &testConfiguration{}, nil)
	assert.NotNil(t, err, "missing file")
}

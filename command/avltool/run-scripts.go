// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/operation"
	"github.com/bitmark-inc/avlbst/util"
)

func runScripts(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	files := []string(c.Args())
	if 0 == len(files) {
		files = []string{"-"}
	}

	// fail before any script runs if one is missing
	for _, name := range files {
		if "-" != name && !util.EnsureFileExists(name) {
			fmt.Fprintf(m.e, "script: %q not found\n", name)
			return fault.ErrScriptNotFound
		}
	}

	var log *logger.L
	if "" != m.logDir {
		err := logger.Initialise(logger.Configuration{
			Directory: m.logDir,
			File:      "avltool.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "debug",
			},
		})
		if nil != err {
			return err
		}
		defer logger.Finalise()

		if err := fault.Initialise(); nil != err {
			return err
		}
		defer fault.Finalise()

		log = logger.New("avltool")
		log.Infof("version: %s  numeric: %v  files: %q", version, m.numeric, files)
	}

	executor := &operation.Executor{
		Tree:    avl.New(),
		Numeric: m.numeric,
		Writer:  m.w,
		Log:     log,
	}

	for _, name := range files {
		if err := runFile(executor, name); nil != err {
			return err
		}
	}
	return nil
}

// parse and run one script; "-" is standard input
func runFile(executor *operation.Executor, name string) error {
	var r io.Reader = os.Stdin
	if "-" != name {
		f, err := os.Open(name)
		if nil != err {
			return err
		}
		defer f.Close()
		r = f
	}

	ops, err := operation.Parse(r)
	if nil != err {
		return err
	}
	return executor.Run(ops)
}

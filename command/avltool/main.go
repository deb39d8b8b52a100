// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	numeric bool
	logDir  string
	w       io.Writer
	e       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "exercise an AVL tree from operation scripts"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " treat keys as integers",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: "",
			Usage: " write a debug log to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute operation scripts (- for stdin) on a single tree",
			ArgsUsage: "FILE…",
			Action:    runScripts,
		},
		{
			Name:      "equal-paths",
			Usage:     "check that all leaves of a level-order tree are at the same depth",
			ArgsUsage: "TOKEN… (- for an absent node)",
			Action:    runEqualPaths,
		},
		{
			Name:   "version",
			Usage:  "display avltool version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			numeric: c.GlobalBool("numeric"),
			logDir:  c.GlobalString("log-directory"),
			w:       c.App.Writer,
			e:       c.App.ErrWriter,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}
	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

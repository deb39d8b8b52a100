// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbst/equalpaths"
)

func runEqualPaths(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	root := equalpaths.Build(c.Args())
	fmt.Fprintf(m.w, "equal-paths: %v  leaf depths: %v\n", equalpaths.EqualPaths(root), equalpaths.Leaves(root))
	return nil
}

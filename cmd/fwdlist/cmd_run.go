// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/snapcore/containers/arenalist"
	"github.com/snapcore/containers/fwdlist"
	"github.com/snapcore/containers/logger"
	"github.com/snapcore/containers/script"
)

func init() {
	const (
		short = "Run a list-manipulation script"
		long  = `
The run command executes the YAML script at the given path and prints the
results of its queries. Lists are linked cells by default, --arena selects
the arena-backed implementation.
`
	)

	addCommand("run", short, long, func() flags.Commander { return &cmdRun{} }, map[string]string{
		"arena": "Use the arena-backed list",
	}, []argDesc{{
		name: "<script>",
		desc: "Path of the YAML script to run",
	}})
}

type cmdRun struct {
	Arena      bool `long:"arena"`
	Positional struct {
		Script string
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdRun) Execute([]string) error {
	s, err := script.Load(c.Positional.Script)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d steps from %s", len(s.Steps), c.Positional.Script)

	if c.Arena {
		r := &script.Runner[*arenalist.List[int]]{New: arenalist.New[int], Out: Stdout}
		return r.Run(s)
	}
	r := &script.Runner[*fwdlist.List[int]]{New: fwdlist.New[int], Out: Stdout}
	return r.Run(s)
}

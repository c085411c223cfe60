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
	"fmt"
	"slices"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/containers/fwdlist"
	"github.com/snapcore/containers/script"
	"github.com/snapcore/containers/sortutil"
)

func init() {
	const (
		short = "Sort numbers through a list"
		long  = `
The sort command loads the given numbers into a list, drains it, sorts the
values with the chosen algorithm and prints the rebuilt list.
`
	)

	addCommand("sort", short, long, func() flags.Commander { return &cmdSort{} }, map[string]string{
		"algo": "Sorting algorithm (bubble, counting, insertion or selection)",
	}, []argDesc{{
		name: "<number>",
		desc: "Numbers to sort",
	}})
}

type cmdSort struct {
	Algo       string `long:"algo"`
	Positional struct {
		Numbers []int `required:"1"`
	} `positional-args:"yes"`
}

func (c *cmdSort) Execute([]string) error {
	algo := c.Algo
	if algo == "" {
		algo = script.DefaultSortAlgo
	}
	sortFunc, err := sortutil.ByName(algo)
	if err != nil {
		return err
	}

	l := fwdlist.Of(c.Positional.Numbers...)
	values := slices.Collect(l.Drain())
	if err := sortFunc(values); err != nil {
		return err
	}
	l.Extend(slices.Values(values))

	fmt.Fprintln(Stdout, l)
	return nil
}

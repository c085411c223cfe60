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

package strutil_test

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/snapcore/containers/strutil"
)

func Test(t *testing.T) { TestingT(t) }

type strutilSuite struct{}

var _ = Suite(&strutilSuite{})

func (*strutilSuite) TestQuoted(c *C) {
	for _, t := range []struct {
		in  []string
		out string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{"one"}, `"one"`},
		{[]string{"one", "two"}, `"one", "two"`},
		{[]string{"one", `tw"`}, `"one", "tw\""`},
	} {
		c.Check(strutil.Quoted(t.in), Equals, t.out, Commentf("expected %#v -> %s", t.in, t.out))
	}
}

func (*strutilSuite) TestSortedKeys(c *C) {
	c.Check(strutil.SortedKeys(map[string]int{}), DeepEquals, []string{})
	c.Check(strutil.SortedKeys(map[string]bool{"b": true, "c": false, "a": true}), DeepEquals, []string{"a", "b", "c"})
}

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

package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "gopkg.in/check.v1"

	fwdlist "github.com/snapcore/containers/cmd/fwdlist"
	"github.com/snapcore/containers/container"
	"github.com/snapcore/containers/testutil"
)

func Test(t *testing.T) { TestingT(t) }

type cmdSuite struct {
	stdout  *bytes.Buffer
	restore func()
}

var _ = Suite(&cmdSuite{})

func (s *cmdSuite) SetUpTest(c *C) {
	s.stdout = &bytes.Buffer{}
	s.restore = fwdlist.MockStdout(s.stdout)
}

func (s *cmdSuite) TearDownTest(c *C) {
	s.restore()
}

const testScript = `
lists:
  a: [3, 1, 2]
steps:
  - op: sort
    list: a
  - op: split-off
    list: a
    at: 2
    into: tail
  - op: pop-front
    list: tail
  - op: show
`

func (s *cmdSuite) writeScript(c *C, content string) string {
	path := filepath.Join(c.MkDir(), "script.yaml")
	c.Assert(os.WriteFile(path, []byte(content), 0644), IsNil)
	return path
}

func (s *cmdSuite) TestRun(c *C) {
	path := s.writeScript(c, testScript)
	for _, args := range [][]string{
		{"run", path},
		{"run", "--arena", path},
	} {
		s.stdout.Reset()
		err := fwdlist.ParseArgs(args)
		c.Assert(err, IsNil, Commentf("%v", args))
		c.Check(s.stdout.String(), Equals, `pop-front tail: 3
a     [1, 2]
tail  []
`, Commentf("%v", args))
	}
}

func (s *cmdSuite) TestRunFailingStep(c *C) {
	path := s.writeScript(c, `
lists: {a: [1]}
steps:
  - op: split-off
    list: a
    at: 2
    into: b
`)
	err := fwdlist.ParseArgs([]string{"run", path})
	c.Check(err, testutil.ErrorIs, container.ErrSplitOutOfRange)
}

func (s *cmdSuite) TestRunMissingScript(c *C) {
	err := fwdlist.ParseArgs([]string{"run"})
	c.Check(err, ErrorMatches, "the required argument `<script>` was not provided")
}

func (s *cmdSuite) TestSort(c *C) {
	err := fwdlist.ParseArgs([]string{"sort", "--", "5", "-2", "9", "0"})
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "[-2, 0, 5, 9]\n")

	for _, algo := range []string{"selection", "bubble", "insertion", "counting"} {
		s.stdout.Reset()
		err := fwdlist.ParseArgs([]string{"sort", "--algo", algo, "3", "1", "2"})
		c.Assert(err, IsNil, Commentf(algo))
		c.Check(s.stdout.String(), Equals, "[1, 2, 3]\n", Commentf(algo))
	}
}

func (s *cmdSuite) TestSortUnknownAlgo(c *C) {
	err := fwdlist.ParseArgs([]string{"sort", "--algo", "bogo", "1"})
	c.Check(err, ErrorMatches, `unknown sort algorithm "bogo".*`)
}

func (s *cmdSuite) TestSortCountingKeyRangeTooLarge(c *C) {
	err := fwdlist.ParseArgs([]string{"sort", "--algo=counting", "--", "-9223372036854775808", "9223372036854775807"})
	c.Check(err, ErrorMatches, `cannot count-sort: key range \[-9223372036854775808, 9223372036854775807\] too large`)
	c.Check(s.stdout.String(), Equals, "")
}

func (s *cmdSuite) TestSortNeedsNumbers(c *C) {
	err := fwdlist.ParseArgs([]string{"sort"})
	c.Check(err, NotNil)
	err = fwdlist.ParseArgs([]string{"sort", "x"})
	c.Check(err, NotNil)
}

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

package osutil_test

import (
	"os"
	"testing"

	"gopkg.in/check.v1"

	"github.com/snapcore/containers/osutil"
)

func Test(t *testing.T) { check.TestingT(t) }

type envSuite struct{}

var _ = check.Suite(&envSuite{})

const envKey = "__FWDLIST_XYZZY__"

func (s *envSuite) TearDownTest(c *check.C) {
	os.Unsetenv(envKey)
}

func (s *envSuite) TestGetenvBoolTrue(c *check.C) {
	for _, s := range []string{
		"1", "t", "TRUE",
	} {
		os.Setenv(envKey, s)
		c.Check(osutil.GetenvBool(envKey), check.Equals, true, check.Commentf(s))
		c.Check(osutil.GetenvBool(envKey, false), check.Equals, true, check.Commentf(s))
		c.Check(osutil.GetenvBool(envKey, true), check.Equals, true, check.Commentf(s))
	}
}

func (s *envSuite) TestGetenvBoolFalse(c *check.C) {
	os.Unsetenv(envKey)
	c.Assert(osutil.GetenvBool(envKey), check.Equals, false)

	for _, s := range []string{
		"", "0", "f", "FALSE", "potato",
	} {
		os.Setenv(envKey, s)
		c.Check(osutil.GetenvBool(envKey), check.Equals, false, check.Commentf(s))
		c.Check(osutil.GetenvBool(envKey, false), check.Equals, false, check.Commentf(s))
	}
}

func (s *envSuite) TestGetenvBoolFallback(c *check.C) {
	os.Unsetenv(envKey)
	c.Check(osutil.GetenvBool(envKey, true), check.Equals, true)

	for _, s := range []string{"", "potato"} {
		os.Setenv(envKey, s)
		c.Check(osutil.GetenvBool(envKey, true), check.Equals, true, check.Commentf(s))
	}
	os.Setenv(envKey, "0")
	c.Check(osutil.GetenvBool(envKey, true), check.Equals, false)
}

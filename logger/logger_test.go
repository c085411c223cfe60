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

package logger_test

import (
	"bytes"
	"log"
	"os"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/snapcore/containers/logger"
)

func Test(t *testing.T) { TestingT(t) }

type LogSuite struct {
	logbuf        *bytes.Buffer
	restoreLogger func()
}

var _ = Suite(&LogSuite{})

func (s *LogSuite) SetUpTest(c *C) {
	s.logbuf, s.restoreLogger = logger.MockLogger()
}

func (s *LogSuite) TearDownTest(c *C) {
	s.restoreLogger()
	os.Unsetenv(logger.DebugEnv)
}

func (s *LogSuite) TestNew(c *C) {
	var buf bytes.Buffer
	l := logger.New(&buf, log.Lshortfile)
	l.Notice("xyzzy")
	c.Check(buf.String(), Matches, `.*: xyzzy\n`)
}

func (s *LogSuite) TestDebugf(c *C) {
	logger.Debugf("xyzzy")
	c.Check(s.logbuf.String(), Equals, "")
}

func (s *LogSuite) TestDebugfEnv(c *C) {
	os.Setenv(logger.DebugEnv, "1")
	logger.Debugf("xyzzy")
	c.Check(s.logbuf.String(), Matches, `(?m).*DEBUG: xyzzy`)
}

func (s *LogSuite) TestNoGuardDebug(c *C) {
	logger.NoGuardDebugf("xyzzy")
	c.Check(s.logbuf.String(), Matches, `(?m).*DEBUG: xyzzy`)
}

func (s *LogSuite) TestNoticef(c *C) {
	logger.Noticef("xyzzy")
	c.Check(s.logbuf.String(), Matches, `(?m).*logger_test\.go:\d+: xyzzy`)
}

func (s *LogSuite) TestPanicf(c *C) {
	c.Check(func() { logger.Panicf("xyzzy") }, Panics, "xyzzy")
	c.Check(s.logbuf.String(), Matches, `(?m).*logger_test\.go:\d+: PANIC xyzzy`)
}

func (s *LogSuite) TestNullLogger(c *C) {
	logger.SetLogger(logger.NullLogger)
	logger.Noticef("xyzzy")
	logger.NoGuardDebugf("xyzzy")
	c.Check(s.logbuf.String(), Equals, "")
}

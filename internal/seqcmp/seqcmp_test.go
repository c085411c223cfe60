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

package seqcmp_test

import (
	"hash/maphash"
	"iter"
	"slices"
	"strings"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/snapcore/containers/internal/seqcmp"
)

func Test(t *testing.T) { TestingT(t) }

type seqcmpSuite struct{}

var _ = Suite(&seqcmpSuite{})

func seq(vs ...int) iter.Seq[int] {
	return slices.Values(vs)
}

func (s *seqcmpSuite) TestEqual(c *C) {
	c.Check(seqcmp.Equal(seq(), seq()), Equals, true)
	c.Check(seqcmp.Equal(seq(1, 2), seq(1, 2)), Equals, true)
	c.Check(seqcmp.Equal(seq(1, 2), seq(1)), Equals, false)
	c.Check(seqcmp.Equal(seq(1), seq(1, 2)), Equals, false)
	c.Check(seqcmp.Equal(seq(1, 3), seq(1, 2)), Equals, false)

	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }
	c.Check(seqcmp.EqualFunc(slices.Values([]string{"A", "b"}), slices.Values([]string{"a", "B"}), caseless), Equals, true)
}

func (s *seqcmpSuite) TestCompare(c *C) {
	c.Check(seqcmp.Compare(seq(), seq()), Equals, 0)
	c.Check(seqcmp.Compare(seq(), seq(0)), Equals, -1)
	c.Check(seqcmp.Compare(seq(0), seq()), Equals, 1)
	c.Check(seqcmp.Compare(seq(6, 7, 8), seq(9, 10)), Equals, -1)
	c.Check(seqcmp.Compare(seq(1, 2, 3), seq(1, 2)), Equals, 1)
	c.Check(seqcmp.Compare(seq(1, 2), seq(1, 2)), Equals, 0)
}

func (s *seqcmpSuite) TestCompareStopsEarly(c *C) {
	pulled := 0
	counting := func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}
	c.Check(seqcmp.Compare(seq(0, 5), counting), Equals, 1)
	c.Check(pulled, Equals, 2)
}

func (s *seqcmpSuite) TestHash(c *C) {
	seed := maphash.MakeSeed()
	c.Check(seqcmp.Hash(seed, seq(1, 2)), Equals, seqcmp.Hash(seed, seq(1, 2)))
	c.Check(seqcmp.Hash(seed, seq(1, 2)), Not(Equals), seqcmp.Hash(seed, seq(2, 1)))
	c.Check(seqcmp.Hash(seed, seq()), Not(Equals), seqcmp.Hash(seed, seq(0)))
}

func (s *seqcmpSuite) TestFormat(c *C) {
	c.Check(seqcmp.Format(seq()), Equals, "[]")
	c.Check(seqcmp.Format(seq(1)), Equals, "[1]")
	c.Check(seqcmp.Format(seq(1, 2, 3)), Equals, "[1, 2, 3]")
	c.Check(seqcmp.Format(slices.Values([]string{"a b", ""})), Equals, "[a b, ]")
}

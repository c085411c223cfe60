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

// Package listtest provides a gocheck suite exercising the public contract
// of a list implementation. Register it once per implementation:
//
//	var _ = check.Suite(&listtest.ContainerSuite[*mylist.List[int]]{
//		New:     mylist.New[int],
//		Equal:   mylist.Equal[int],
//		Compare: mylist.Compare[int],
//	})
package listtest

import (
	"slices"

	"gopkg.in/check.v1"

	"github.com/snapcore/containers/container"
	"github.com/snapcore/containers/testutil"
)

// ContainerSuite tests a list implementation L of ints.
type ContainerSuite[L container.List[int, L]] struct {
	// New returns an empty list.
	New func() L
	// Equal and Compare are the implementation's conformance functions.
	Equal   func(a, b L) bool
	Compare func(a, b L) int
}

func (s *ContainerSuite[L]) from(vs ...int) L {
	l := s.New()
	l.Extend(slices.Values(vs))
	return l
}

func (s *ContainerSuite[L]) drainFront(l L) []int {
	var out []int
	for {
		v, ok := l.PopFront()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func (s *ContainerSuite[L]) TestNewList(c *check.C) {
	l := s.New()
	c.Check(l.Empty(), check.Equals, true)
	c.Check(l.Len(), check.Equals, 0)
	c.Check(l.ContainsFunc(func(v int) bool { return v == 233 }), check.Equals, false)
	c.Check(l, testutil.StringEquals, "[]")
	c.Check(s.Equal(l, l), check.Equals, true)
	c.Check(s.Equal(l, s.New()), check.Equals, true)
	c.Check(s.Equal(l, s.from(0)), check.Equals, false)

	_, ok := l.Front()
	c.Check(ok, check.Equals, false)
	_, ok = l.Back()
	c.Check(ok, check.Equals, false)
	c.Check(l.FrontPtr(), check.IsNil)
	c.Check(l.BackPtr(), check.IsNil)
	_, ok = l.PopFront()
	c.Check(ok, check.Equals, false)
	_, ok = l.PopBack()
	c.Check(ok, check.Equals, false)

	second, err := l.SplitOff(0)
	c.Assert(err, check.IsNil)
	c.Check(s.Equal(l, s.New()), check.Equals, true)
	c.Check(s.Equal(second, s.New()), check.Equals, true)
}

func (s *ContainerSuite[L]) TestFromSeqRoundTrip(c *check.C) {
	for _, seq := range [][]int{
		nil,
		{42},
		{1, 2, 3},
		{3, 3, 1, 0, -7, 3},
	} {
		l := s.from(seq...)
		c.Check(l.Len(), check.Equals, len(seq))
		c.Check(s.drainFront(l), check.DeepEquals, seq, check.Commentf("%v", seq))
		c.Check(l.Empty(), check.Equals, true)
	}
}

func (s *ContainerSuite[L]) TestSmallItems(c *check.C) {
	l := s.from(1, 2, 3)
	c.Check(l.Empty(), check.Equals, false)
	c.Check(l.Len(), check.Equals, 3)
	c.Check(s.Equal(l, s.from(1, 2, 3)), check.Equals, true)
	c.Check(s.Equal(l, s.from(10, 2, 3)), check.Equals, false)

	l.PushBack(4)
	c.Check(l, testutil.StringEquals, "[1, 2, 3, 4]")
	v, ok := l.PopFront()
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 1)
	c.Check(l, testutil.StringEquals, "[2, 3, 4]")

	l.PushFront(5)
	v, _ = l.PopBack()
	c.Check(v, check.Equals, 4)
	for _, expected := range []int{5, 2, 3} {
		v, ok = l.PopFront()
		c.Check(ok, check.Equals, true)
		c.Check(v, check.Equals, expected)
	}
	_, ok = l.PopFront()
	c.Check(ok, check.Equals, false)
	_, ok = l.PopBack()
	c.Check(ok, check.Equals, false)
}

func (s *ContainerSuite[L]) TestFrontBack(c *check.C) {
	l := s.from(7)
	front, _ := l.Front()
	back, _ := l.Back()
	c.Check(front, check.Equals, 7)
	c.Check(back, check.Equals, 7)

	l.PushBack(8)
	l.PushFront(6)
	front, _ = l.Front()
	back, _ = l.Back()
	c.Check(front, check.Equals, 6)
	c.Check(back, check.Equals, 8)

	*l.FrontPtr() = 60
	*l.BackPtr() = 80
	c.Check(l, testutil.StringEquals, "[60, 7, 80]")

	v, _ := l.PopBack()
	c.Check(v, check.Equals, 80)
	v, _ = l.PopBack()
	c.Check(v, check.Equals, 7)
	v, _ = l.PopBack()
	c.Check(v, check.Equals, 60)
	c.Check(l.Empty(), check.Equals, true)
}

func (s *ContainerSuite[L]) TestContainsFunc(c *check.C) {
	l := s.from(1, 3, 5)
	c.Check(l.ContainsFunc(func(v int) bool { return v == 3 }), check.Equals, true)
	c.Check(l.ContainsFunc(func(v int) bool { return v%2 == 0 }), check.Equals, false)
}

func (s *ContainerSuite[L]) TestSplitOffMiddle(c *check.C) {
	l := s.from(6, 7, 8, 9, 10)
	second, err := l.SplitOff(3)
	c.Assert(err, check.IsNil)
	c.Check(l, testutil.StringEquals, "[6, 7, 8]")
	c.Check(second, testutil.StringEquals, "[9, 10]")
	c.Check(s.Equal(l, second), check.Equals, false)
	c.Check(s.Compare(l, second), check.Equals, -1)
	c.Check(s.Compare(second, l), check.Equals, 1)
}

func (s *ContainerSuite[L]) TestSplitOffBounds(c *check.C) {
	for at := 0; at <= 3; at++ {
		l := s.from(10, 11, 12)
		second, err := l.SplitOff(at)
		c.Assert(err, check.IsNil)
		c.Check(l.Len(), check.Equals, at)
		c.Check(second.Len(), check.Equals, 3-at)
		l.Append(second)
		c.Check(l, testutil.StringEquals, "[10, 11, 12]")
	}

	l := s.from(10, 11, 12)
	second, err := l.SplitOff(0)
	c.Assert(err, check.IsNil)
	c.Check(l.Empty(), check.Equals, true)
	c.Check(second, testutil.StringEquals, "[10, 11, 12]")

	l = s.from(10, 11, 12)
	_, err = l.SplitOff(4)
	c.Check(err, testutil.ErrorIs, container.ErrSplitOutOfRange)
	c.Check(err, check.ErrorMatches, `cannot split off a nonexistent index: 4 not in \[0, 3\]`)
	c.Check(l, testutil.StringEquals, "[10, 11, 12]")

	_, err = l.SplitOff(-1)
	c.Check(err, testutil.ErrorIs, container.ErrSplitOutOfRange)
	c.Check(l, testutil.StringEquals, "[10, 11, 12]")

	_, err = s.New().SplitOff(1)
	c.Check(err, testutil.ErrorIs, container.ErrSplitOutOfRange)
}

func (s *ContainerSuite[L]) TestAppend(c *check.C) {
	l := s.from(1, 2)
	other := s.from(3, 4)
	l.Append(other)
	c.Check(l, testutil.StringEquals, "[1, 2, 3, 4]")
	c.Check(other.Empty(), check.Equals, true)

	empty := s.New()
	empty.Append(l)
	c.Check(empty, testutil.StringEquals, "[1, 2, 3, 4]")
	c.Check(l.Empty(), check.Equals, true)

	empty.Append(s.New())
	c.Check(empty, testutil.StringEquals, "[1, 2, 3, 4]")

	// the emptied list is still usable
	other.PushBack(9)
	c.Check(other, testutil.StringEquals, "[9]")
}

func (s *ContainerSuite[L]) TestAppendSelfPanics(c *check.C) {
	l := s.from(1)
	c.Check(func() { l.Append(l) }, check.PanicMatches, `.*cannot append a list to itself`)
	c.Check(l, testutil.StringEquals, "[1]")
}

func (s *ContainerSuite[L]) TestLargeItems(c *check.C) {
	const qty = 10000
	vs := make([]int, 0, qty+1)
	for i := 0; i <= qty; i++ {
		vs = append(vs, i*5+4)
	}
	l := s.New()
	l.Extend(slices.Values(vs))
	c.Check(l.Empty(), check.Equals, false)
	c.Check(l.Len(), check.Equals, qty+1)

	v, _ := l.PopFront()
	c.Check(v, check.Equals, 4)
	v, _ = l.PopBack()
	c.Check(v, check.Equals, 5*qty+4)
	c.Check(l.ContainsFunc(func(v int) bool { return v == 2504 }), check.Equals, true)
	c.Check(l.ContainsFunc(func(v int) bool { return v == 2503 }), check.Equals, false)

	for i := 1; i <= qty-1; i++ {
		v, ok := l.PopFront()
		c.Assert(ok, check.Equals, true)
		c.Assert(v, check.Equals, i*5+4)
	}
	c.Check(l.Empty(), check.Equals, true)
}

func (s *ContainerSuite[L]) TestClearLongChain(c *check.C) {
	l := s.New()
	for i := 0; i < 100000; i++ {
		l.PushFront(i)
	}
	l.Clear()
	c.Check(l.Empty(), check.Equals, true)
	c.Check(l.Len(), check.Equals, 0)
	l.PushBack(1)
	c.Check(l, testutil.StringEquals, "[1]")
}

func (s *ContainerSuite[L]) TestCloneIsIndependent(c *check.C) {
	l := s.from(1, 2, 3)
	clone := l.Clone()
	c.Check(s.Equal(l, clone), check.Equals, true)

	for p := range clone.Ptrs() {
		*p *= 10
	}
	clone.PushBack(40)
	c.Check(clone, testutil.StringEquals, "[10, 20, 30, 40]")
	c.Check(l, testutil.StringEquals, "[1, 2, 3]")
}

func (s *ContainerSuite[L]) TestValues(c *check.C) {
	l := s.from(1, 2, 3)
	c.Check(slices.Collect(l.Values()), check.DeepEquals, []int{1, 2, 3})
	c.Check(slices.Collect(s.New().Values()), check.HasLen, 0)

	var seen []int
	for v := range l.Values() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	c.Check(seen, check.DeepEquals, []int{1})
	// breaking out of the loop releases the list
	l.PushBack(4)
	c.Check(l.Len(), check.Equals, 4)
}

func (s *ContainerSuite[L]) TestStructuralChangeDuringTraversalPanics(c *check.C) {
	l := s.from(1, 2, 3)
	c.Check(func() {
		for range l.Values() {
			l.PushBack(4)
		}
	}, check.PanicMatches, `.*list modified during traversal`)
	c.Check(func() {
		for range l.Ptrs() {
			l.PopFront()
		}
	}, check.PanicMatches, `.*list modified during traversal`)
	c.Check(func() {
		l.Extend(l.Values())
	}, check.PanicMatches, `.*list modified during traversal`)
	c.Check(l, testutil.StringEquals, "[1, 2, 3]")
}

func (s *ContainerSuite[L]) TestOverlappingBorrowsPanic(c *check.C) {
	l := s.from(1, 2)
	c.Check(func() {
		for range l.Values() {
			for range l.Ptrs() {
			}
		}
	}, check.PanicMatches, `.*already borrowed`)
	c.Check(func() {
		for range l.Ptrs() {
			for range l.Values() {
			}
		}
	}, check.PanicMatches, `.*borrowed for mutation`)

	// nested read-only traversals are fine
	n := 0
	for range l.Values() {
		for range l.Values() {
			n++
		}
	}
	c.Check(n, check.Equals, 4)
}

func (s *ContainerSuite[L]) TestDrain(c *check.C) {
	l := s.from(1, 2, 3)
	c.Check(slices.Collect(l.Drain()), check.DeepEquals, []int{1, 2, 3})
	c.Check(l.Empty(), check.Equals, true)

	l = s.from(1, 2, 3)
	for v := range l.Drain() {
		c.Check(v, check.Equals, 1)
		break
	}
	c.Check(l.Empty(), check.Equals, true)
	l.PushBack(7)
	c.Check(l, testutil.StringEquals, "[7]")
}

func (s *ContainerSuite[L]) TestExtend(c *check.C) {
	l := s.from(1)
	l.Extend(slices.Values([]int{2, 3}))
	l.Extend(s.from(4, 5).Drain())
	c.Check(l, testutil.StringEquals, "[1, 2, 3, 4, 5]")

	// a sequence that pushes to the list it extends
	l = s.from(1)
	l.Extend(func(yield func(int) bool) {
		if !yield(2) {
			return
		}
		l.PushBack(3)
		yield(4)
	})
	c.Check(l, testutil.StringEquals, "[1, 2, 3, 4]")
}

func (s *ContainerSuite[L]) TestCompareOrdering(c *check.C) {
	for _, t := range []struct {
		a, b []int
		cmp  int
	}{
		{nil, nil, 0},
		{nil, []int{1}, -1},
		{[]int{1, 2}, []int{1, 2, 0}, -1},
		{[]int{1, 3}, []int{1, 2, 9}, 1},
		{[]int{1, 2, 3}, []int{1, 2, 3}, 0},
	} {
		comment := check.Commentf("%v vs %v", t.a, t.b)
		c.Check(s.Compare(s.from(t.a...), s.from(t.b...)), check.Equals, t.cmp, comment)
		c.Check(s.Compare(s.from(t.b...), s.from(t.a...)), check.Equals, -t.cmp, comment)
		c.Check(s.Equal(s.from(t.a...), s.from(t.b...)), check.Equals, t.cmp == 0, comment)
	}
}

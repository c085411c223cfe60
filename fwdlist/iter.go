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

package fwdlist

import (
	"iter"
)

const errModified = "fwdlist: list changed structure while a cursor was live"

// Iter is a read-only cursor over a list. Once Next reports exhaustion it
// keeps doing so.
//
// The list must not change structure while the cursor is in use; Next
// panics if it did. Explicit cursors do not borrow the list: they cannot be
// created inside a Ptrs loop, but nothing stops an Iter and an IterMut of
// the same list from being used together. Only Values and Ptrs loops are
// checked against each other.
type Iter[T any] struct {
	list *List[T]
	cur  *cell[T]
	gen  uint64
	done bool
}

// Iter returns a read-only cursor positioned at the first value.
func (l *List[T]) Iter() *Iter[T] {
	if l.exclusive {
		panic("fwdlist: list is borrowed for mutation")
	}
	return &Iter[T]{list: l, cur: l.head, gen: l.gen}
}

// Next returns the value under the cursor and advances it.
func (it *Iter[T]) Next() (v T, ok bool) {
	if it.done {
		return v, false
	}
	if it.list.gen != it.gen {
		panic(errModified)
	}
	if it.cur == nil {
		it.done = true
		it.list = nil
		return v, false
	}
	v = it.cur.value
	it.cur = it.cur.next
	return v, true
}

// IterMut is a cursor handing out a pointer to each value in turn. Like
// Iter it holds no borrow, so the caller must not read the list through
// another cursor while writing through this one.
type IterMut[T any] struct {
	list *List[T]
	cur  *cell[T]
	gen  uint64
	done bool
}

// IterMut returns a mutable cursor positioned at the first value.
func (l *List[T]) IterMut() *IterMut[T] {
	if l.exclusive || l.shared > 0 {
		panic("fwdlist: list is already borrowed")
	}
	return &IterMut[T]{list: l, cur: l.head, gen: l.gen}
}

// Next returns a pointer to the value under the cursor and advances it.
func (it *IterMut[T]) Next() (p *T, ok bool) {
	if it.done {
		return nil, false
	}
	if it.list.gen != it.gen {
		panic(errModified)
	}
	if it.cur == nil {
		it.done = true
		it.list = nil
		return nil, false
	}
	p = &it.cur.value
	it.cur = it.cur.next
	return p, true
}

// IntoIter owns a chain taken from a list and yields its values by popping
// them off the front.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the whole chain of l into a consuming cursor. l is empty
// afterwards.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	if l.head != nil {
		l.mutate()
		it.list.head = l.head
		l.head = nil
	}
	return it
}

// Next removes and returns the next value.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// Len counts the values not consumed yet.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Values returns an iterator over the values of l. While the loop runs, l
// must not change structure and Ptrs may not be used.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.exclusive {
			panic("fwdlist: list is borrowed for mutation")
		}
		l.shared++
		defer func() { l.shared-- }()

		for c := l.head; c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over pointers to the values of l. No other
// traversal of l may run at the same time.
func (l *List[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l.exclusive || l.shared > 0 {
			panic("fwdlist: list is already borrowed")
		}
		l.exclusive = true
		defer func() { l.exclusive = false }()

		for c := l.head; c != nil; c = c.next {
			if !yield(&c.value) {
				return
			}
		}
	}
}

// Drain returns an iterator that consumes l, leaving it empty. Values not
// reached because the loop stopped early are discarded.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.IntoIter()
		defer it.list.Clear()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

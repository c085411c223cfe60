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

package arenalist

import (
	"iter"
)

const errModified = "arenalist: list changed structure while a cursor was live"

// Iter is a read-only cursor over a list. It is fused: after reporting
// exhaustion once, Next keeps reporting it. Explicit cursors hold no borrow
// of the list; only Values and Ptrs loops are checked against each other.
type Iter[T any] struct {
	list *List[T]
	cur  int
	gen  uint64
	done bool
}

func (l *List[T]) Iter() *Iter[T] {
	if l.exclusive {
		panic("arenalist: list is borrowed for mutation")
	}
	return &Iter[T]{list: l, cur: l.head, gen: l.gen}
}

func (it *Iter[T]) Next() (v T, ok bool) {
	if it.done {
		return v, false
	}
	if it.list.gen != it.gen {
		panic(errModified)
	}
	if it.cur == 0 {
		it.done = true
		it.list = nil
		return v, false
	}
	s := it.list.at(it.cur)
	it.cur = s.next
	return s.value, true
}

// IterMut is a fused cursor handing out a pointer to each value in turn.
type IterMut[T any] struct {
	list *List[T]
	cur  int
	gen  uint64
	done bool
}

func (l *List[T]) IterMut() *IterMut[T] {
	if l.exclusive || l.shared > 0 {
		panic("arenalist: list is already borrowed")
	}
	return &IterMut[T]{list: l, cur: l.head, gen: l.gen}
}

func (it *IterMut[T]) Next() (p *T, ok bool) {
	if it.done {
		return nil, false
	}
	if it.list.gen != it.gen {
		panic(errModified)
	}
	if it.cur == 0 {
		it.done = true
		it.list = nil
		return nil, false
	}
	s := it.list.at(it.cur)
	it.cur = s.next
	return &s.value, true
}

// IntoIter owns the arena taken from a list and pops its values off the
// front.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the contents of l into a consuming cursor, leaving l empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	if l.head != 0 {
		l.mutate()
		it.list.exchange(l)
	}
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Values returns an iterator over the values of l. l must not change
// structure while the loop runs.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.exclusive {
			panic("arenalist: list is borrowed for mutation")
		}
		l.shared++
		defer func() { l.shared-- }()

		for i := l.head; i != 0; i = l.at(i).next {
			if !yield(l.at(i).value) {
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
			panic("arenalist: list is already borrowed")
		}
		l.exclusive = true
		defer func() { l.exclusive = false }()

		for i := l.head; i != 0; i = l.at(i).next {
			if !yield(&l.at(i).value) {
				return
			}
		}
	}
}

// Drain returns an iterator consuming l. Values left when the loop stops
// early are discarded.
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

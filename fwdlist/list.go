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

// Package fwdlist implements a singly linked list. Its cells are reachable
// only forward from the first one and no reference to the last cell is
// kept, so operations at the back of the list walk the whole chain.
//
// The zero value of List is an empty list ready to use. A List performs no
// locking; callers sharing one between goroutines must provide their own
// mutual exclusion.
package fwdlist

import (
	"iter"
	"slices"

	"github.com/snapcore/containers/container"
)

// cell is owned either by the List (when first) or by its predecessor.
type cell[T any] struct {
	value T
	next  *cell[T]
}

// List is a forward-linked list of values of type T.
type List[T any] struct {
	head *cell[T]

	// gen is bumped on every structural change and checked by cursors.
	gen uint64
	// shared counts running Values loops, exclusive is set while a Ptrs
	// loop runs.
	shared    int
	exclusive bool
}

var _ container.List[int, *List[int]] = (*List[int])(nil)

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding vs in order.
func Of[T any](vs ...T) *List[T] {
	return FromSeq(slices.Values(vs))
}

// FromSeq returns a list holding the values produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// Len counts the elements of the list.
func (l *List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// mutate must precede every structural change of the list.
func (l *List[T]) mutate() {
	l.checkUnborrowed()
	l.gen++
}

func (l *List[T]) checkUnborrowed() {
	if l.shared > 0 || l.exclusive {
		panic("fwdlist: list modified during traversal")
	}
}

// release unlinks c and hands back its value.
func release[T any](c *cell[T]) T {
	v := c.value
	var zero T
	c.value = zero
	c.next = nil
	return v
}

// Front returns the first value of the list.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// FrontPtr returns a pointer to the first value, or nil if the list is empty.
func (l *List[T]) FrontPtr() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// last walks to the last cell of the chain.
func (l *List[T]) last() *cell[T] {
	var last *cell[T]
	for c := l.head; c != nil; c = c.next {
		last = c
	}
	return last
}

// Back returns the last value of the list.
func (l *List[T]) Back() (v T, ok bool) {
	last := l.last()
	if last == nil {
		return v, false
	}
	return last.value, true
}

// BackPtr returns a pointer to the last value, or nil if the list is empty.
func (l *List[T]) BackPtr() *T {
	last := l.last()
	if last == nil {
		return nil
	}
	return &last.value
}

// PushFront makes v the first value of the list.
func (l *List[T]) PushFront(v T) {
	l.mutate()
	l.head = &cell[T]{value: v, next: l.head}
}

// PopFront removes and returns the first value of the list.
func (l *List[T]) PopFront() (v T, ok bool) {
	c := l.head
	if c == nil {
		return v, false
	}
	l.mutate()
	l.head = c.next
	return release(c), true
}

// PushBack makes v the last value of the list.
func (l *List[T]) PushBack(v T) {
	l.mutate()
	c := &cell[T]{value: v}
	if last := l.last(); last != nil {
		last.next = c
	} else {
		l.head = c
	}
}

// PopBack removes and returns the last value of the list.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	l.mutate()
	var prev *cell[T]
	last := l.head
	for last.next != nil {
		prev, last = last, last.next
	}
	if prev == nil {
		l.head = nil
	} else {
		prev.next = nil
	}
	return release(last), true
}

// ContainsFunc reports whether match returns true for some value.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	for c := l.head; c != nil; c = c.next {
		if match(c.value) {
			return true
		}
	}
	return false
}

// Contains reports whether v is present in l.
func Contains[T comparable](l *List[T], v T) bool {
	return l.ContainsFunc(func(e T) bool { return e == v })
}

// Append links the chain of other after the last cell of l. Afterwards other
// is empty. No cell is copied.
func (l *List[T]) Append(other *List[T]) {
	if other == l {
		panic("fwdlist: cannot append a list to itself")
	}
	if other.head == nil {
		return
	}
	l.checkUnborrowed()
	other.checkUnborrowed()
	l.gen++
	other.gen++

	if last := l.last(); last != nil {
		last.next = other.head
	} else {
		l.head = other.head
	}
	other.head = nil
}

// SplitOff returns a new list holding the values of l from position at
// onwards, l keeps the values before at. Splitting at Len returns an empty
// list. Positions past the end (or negative) yield a *container.SplitError
// and leave l untouched.
func (l *List[T]) SplitOff(at int) (*List[T], error) {
	if at == 0 {
		// the whole chain changes hands, no cell moves
		l.mutate()
		second := &List[T]{head: l.head}
		l.head = nil
		return second, nil
	}
	if at < 0 {
		return nil, &container.SplitError{At: at, Len: l.Len()}
	}

	// find the cell that becomes the last one of l
	cur := l.head
	for i := 1; cur != nil && i < at; i++ {
		cur = cur.next
	}
	if cur == nil {
		return nil, &container.SplitError{At: at, Len: l.Len()}
	}
	if cur.next == nil {
		// splitting at the end leaves l as it is
		return New[T](), nil
	}

	l.mutate()
	second := &List[T]{head: cur.next}
	cur.next = nil
	return second, nil
}

// Clear removes all values of l. The chain is taken apart one cell at a
// time.
func (l *List[T]) Clear() {
	if l.head == nil {
		return
	}
	l.mutate()
	c := l.head
	l.head = nil
	for c != nil {
		next := c.next
		release(c)
		c = next
	}
}

// Clone returns a list with its own chain holding the same values as l.
// Values are copied with assignment.
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()
	link := &clone.head
	for c := l.head; c != nil; c = c.next {
		*link = &cell[T]{value: c.value}
		link = &(*link).next
	}
	return clone
}

// tailLink returns the link following the last cell.
func (l *List[T]) tailLink() **cell[T] {
	link := &l.head
	for *link != nil {
		link = &(*link).next
	}
	return link
}

// Extend pushes every value produced by seq to the back of l, in order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	link := l.tailLink()
	gen := l.gen
	for v := range seq {
		if l.gen != gen {
			// seq itself changed l
			link = l.tailLink()
		}
		l.mutate()
		c := &cell[T]{value: v}
		*link = c
		link = &c.next
		gen = l.gen
	}
}

// ExtendPtrs pushes a copy of every value seq points to.
func (l *List[T]) ExtendPtrs(seq iter.Seq[*T]) {
	l.Extend(func(yield func(T) bool) {
		for p := range seq {
			if !yield(*p) {
				return
			}
		}
	})
}

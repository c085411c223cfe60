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

// Package arenalist implements a forward-linked list whose cells live in a
// slice owned by the list and link to each other by index. Removed cells are
// kept on a free list and reused by later insertions.
//
// Cells cannot change arenas, so Append and SplitOff copy the moved values
// into the receiving arena, in time proportional to their number. Appending
// to an empty list and splitting at zero exchange whole arenas instead.
//
// Pointers obtained from FrontPtr, BackPtr or Ptrs remain valid only until
// the next structural change of the list, since growing the arena may move
// its cells.
package arenalist

import (
	"iter"
	"slices"

	"github.com/snapcore/containers/container"
)

// slot is a cell of the arena. next holds the index of the successor plus
// one, zero meaning there is none.
type slot[T any] struct {
	value T
	next  int
}

// List is a forward-linked list of values of type T. The zero value is an
// empty list.
type List[T any] struct {
	slots []slot[T]
	head  int
	free  int

	gen       uint64
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

func (l *List[T]) at(i int) *slot[T] {
	return &l.slots[i-1]
}

// alloc stores v in a free slot, or a new one, and returns its link.
func (l *List[T]) alloc(v T, next int) int {
	if i := l.free; i != 0 {
		s := l.at(i)
		l.free = s.next
		s.value, s.next = v, next
		return i
	}
	l.slots = append(l.slots, slot[T]{value: v, next: next})
	return len(l.slots)
}

// linkAfter stores v in a new cell following prev, or as the first cell
// when prev is zero, and returns its link.
func (l *List[T]) linkAfter(prev int, v T) int {
	n := l.alloc(v, 0)
	if prev != 0 {
		l.at(prev).next = n
	} else {
		l.head = n
	}
	return n
}

// release puts slot i on the free list and returns the value it held.
func (l *List[T]) release(i int) T {
	s := l.at(i)
	v := s.value
	var zero T
	s.value = zero
	s.next = l.free
	l.free = i
	return v
}

func (l *List[T]) mutate() {
	l.checkUnborrowed()
	l.gen++
}

func (l *List[T]) checkUnborrowed() {
	if l.shared > 0 || l.exclusive {
		panic("arenalist: list modified during traversal")
	}
}

// Len counts the elements of the list.
func (l *List[T]) Len() int {
	n := 0
	for i := l.head; i != 0; i = l.at(i).next {
		n++
	}
	return n
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head == 0
}

func (l *List[T]) Front() (v T, ok bool) {
	if l.head == 0 {
		return v, false
	}
	return l.at(l.head).value, true
}

func (l *List[T]) FrontPtr() *T {
	if l.head == 0 {
		return nil
	}
	return &l.at(l.head).value
}

func (l *List[T]) last() int {
	last := 0
	for i := l.head; i != 0; i = l.at(i).next {
		last = i
	}
	return last
}

func (l *List[T]) Back() (v T, ok bool) {
	last := l.last()
	if last == 0 {
		return v, false
	}
	return l.at(last).value, true
}

func (l *List[T]) BackPtr() *T {
	last := l.last()
	if last == 0 {
		return nil
	}
	return &l.at(last).value
}

func (l *List[T]) PushFront(v T) {
	l.mutate()
	l.head = l.alloc(v, l.head)
}

func (l *List[T]) PopFront() (v T, ok bool) {
	i := l.head
	if i == 0 {
		return v, false
	}
	l.mutate()
	l.head = l.at(i).next
	return l.release(i), true
}

func (l *List[T]) PushBack(v T) {
	l.mutate()
	l.linkAfter(l.last(), v)
}

func (l *List[T]) PopBack() (v T, ok bool) {
	if l.head == 0 {
		return v, false
	}
	l.mutate()
	prev, last := 0, l.head
	for l.at(last).next != 0 {
		prev, last = last, l.at(last).next
	}
	if prev == 0 {
		l.head = 0
	} else {
		l.at(prev).next = 0
	}
	return l.release(last), true
}

// ContainsFunc reports whether match returns true for some value.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	for i := l.head; i != 0; i = l.at(i).next {
		if match(l.at(i).value) {
			return true
		}
	}
	return false
}

// Contains reports whether v is present in l.
func Contains[T comparable](l *List[T], v T) bool {
	return l.ContainsFunc(func(e T) bool { return e == v })
}

// exchange swaps the storage of l and other. Borrow state stays with each
// list.
func (l *List[T]) exchange(other *List[T]) {
	l.slots, other.slots = other.slots, l.slots
	l.head, other.head = other.head, l.head
	l.free, other.free = other.free, l.free
}

// Append moves the values of other after the last value of l and empties
// other. When l is empty the arenas are exchanged, otherwise the values of
// other are copied into the arena of l.
func (l *List[T]) Append(other *List[T]) {
	if other == l {
		panic("arenalist: cannot append a list to itself")
	}
	if other.head == 0 {
		return
	}
	l.checkUnborrowed()
	other.checkUnborrowed()
	l.gen++
	other.gen++

	if l.head == 0 {
		l.exchange(other)
		other.reset()
		return
	}
	prev := l.last()
	for i := other.head; i != 0; i = other.at(i).next {
		prev = l.linkAfter(prev, other.at(i).value)
	}
	other.drop()
}

// SplitOff returns a new list holding the values from position at onwards,
// l keeps the values before at. Invalid positions yield a
// *container.SplitError and leave l untouched.
func (l *List[T]) SplitOff(at int) (*List[T], error) {
	if at == 0 {
		l.mutate()
		second := New[T]()
		second.exchange(l)
		return second, nil
	}
	if at < 0 {
		return nil, &container.SplitError{At: at, Len: l.Len()}
	}

	cur := l.head
	for n := 1; cur != 0 && n < at; n++ {
		cur = l.at(cur).next
	}
	if cur == 0 {
		return nil, &container.SplitError{At: at, Len: l.Len()}
	}
	if l.at(cur).next == 0 {
		return New[T](), nil
	}

	l.mutate()
	second := New[T]()
	rest := l.at(cur).next
	l.at(cur).next = 0
	prev := 0
	for i := rest; i != 0; {
		next := l.at(i).next
		prev = second.linkAfter(prev, l.release(i))
		i = next
	}
	return second, nil
}

// drop walks the chain zeroing every value, then forgets the arena.
func (l *List[T]) drop() {
	for i := l.head; i != 0; {
		s := l.at(i)
		next := s.next
		var zero T
		s.value = zero
		s.next = 0
		i = next
	}
	l.reset()
}

func (l *List[T]) reset() {
	l.slots = nil
	l.head = 0
	l.free = 0
}

// Clear removes all values of l and releases its arena.
func (l *List[T]) Clear() {
	if l.head == 0 {
		l.reset()
		return
	}
	l.mutate()
	l.drop()
}

// Clone returns a list with its own compact arena holding the same values.
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()
	clone.slots = make([]slot[T], 0, l.Len())
	prev := 0
	for i := l.head; i != 0; i = l.at(i).next {
		prev = clone.linkAfter(prev, l.at(i).value)
	}
	return clone
}

// Extend pushes every value produced by seq to the back of l, in order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	last := l.last()
	gen := l.gen
	for v := range seq {
		if l.gen != gen {
			last = l.last()
		}
		l.mutate()
		last = l.linkAfter(last, v)
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

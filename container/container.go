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

// Package container describes the contract shared by the list
// implementations of this module, so that tests and tools can be written
// once against it.
package container

import (
	"errors"
	"fmt"
	"iter"
)

// List is the public contract of a forward-linked list of T. L is the
// concrete list type itself, which lets Append, SplitOff and Clone exchange
// lists of the same implementation.
type List[T any, L any] interface {
	// Len counts the elements of the list.
	Len() int
	// Empty reports whether the list holds no elements.
	Empty() bool

	Front() (T, bool)
	FrontPtr() *T
	Back() (T, bool)
	BackPtr() *T

	PushFront(v T)
	PopFront() (T, bool)
	PushBack(v T)
	PopBack() (T, bool)

	ContainsFunc(match func(T) bool) bool

	// Append moves all elements of other to the end of the list, leaving
	// other empty.
	Append(other L)
	// SplitOff moves the elements from position at onwards into a new list.
	SplitOff(at int) (L, error)
	// Clear removes all elements.
	Clear()
	// Clone returns an independent copy of the list.
	Clone() L
	// Extend pushes every value of seq to the back of the list.
	Extend(seq iter.Seq[T])

	Values() iter.Seq[T]
	Ptrs() iter.Seq[*T]
	Drain() iter.Seq[T]

	String() string
}

// ErrSplitOutOfRange is matched by errors returned when a list is split at a
// position past its end.
var ErrSplitOutOfRange = errors.New("cannot split off a nonexistent index")

// SplitError reports an invalid split position.
type SplitError struct {
	At  int
	Len int
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("%v: %d not in [0, %d]", ErrSplitOutOfRange, e.At, e.Len)
}

func (e *SplitError) Is(err error) bool {
	return err == ErrSplitOutOfRange
}

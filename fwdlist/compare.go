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
	"cmp"
	"hash/maphash"

	"github.com/snapcore/containers/internal/seqcmp"
)

// Equal reports whether a and b hold equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return seqcmp.Equal(a.Values(), b.Values())
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[A, B any](a *List[A], b *List[B], eq func(A, B) bool) bool {
	return seqcmp.EqualFunc(a.Values(), b.Values(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1. When
// one list is a prefix of the other the shorter one is lesser.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return seqcmp.Compare(a.Values(), b.Values())
}

// CompareFunc is like Compare but compares values with cmp.
func CompareFunc[A, B any](a *List[A], b *List[B], cmp func(A, B) int) int {
	return seqcmp.CompareFunc(a.Values(), b.Values(), cmp)
}

// Hash combines the hashes of the values of l in order.
func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	return seqcmp.Hash(seed, l.Values())
}

// HashFunc writes every value of l to h using write.
func HashFunc[T any](h *maphash.Hash, l *List[T], write func(*maphash.Hash, T)) {
	seqcmp.HashFunc(h, l.Values(), write)
}

// String returns the values of l formatted as [e1, e2, ..., en].
func (l *List[T]) String() string {
	return seqcmp.Format(l.Values())
}

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
	"cmp"
	"hash/maphash"

	"github.com/snapcore/containers/internal/seqcmp"
)

func Equal[T comparable](a, b *List[T]) bool {
	return seqcmp.Equal(a.Values(), b.Values())
}

func EqualFunc[A, B any](a *List[A], b *List[B], eq func(A, B) bool) bool {
	return seqcmp.EqualFunc(a.Values(), b.Values(), eq)
}

// Compare orders lists lexicographically, see fwdlist.Compare.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return seqcmp.Compare(a.Values(), b.Values())
}

func CompareFunc[A, B any](a *List[A], b *List[B], cmp func(A, B) int) int {
	return seqcmp.CompareFunc(a.Values(), b.Values(), cmp)
}

func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	return seqcmp.Hash(seed, l.Values())
}

func HashFunc[T any](h *maphash.Hash, l *List[T], write func(*maphash.Hash, T)) {
	seqcmp.HashFunc(h, l.Values(), write)
}

// String formats l as [e1, e2, ..., en].
func (l *List[T]) String() string {
	return seqcmp.Format(l.Values())
}

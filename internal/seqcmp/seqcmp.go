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

// Package seqcmp implements element-wise comparison, hashing and formatting
// of iter.Seq sequences. It is shared by the list implementations so that
// their conformance behaves identically.
package seqcmp

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"iter"
	"strings"
)

// EqualFunc reports whether a and b produce pairwise-equal elements and the
// same number of them.
func EqualFunc[A, B any](a iter.Seq[A], b iter.Seq[B], eq func(A, B) bool) bool {
	next, stop := iter.Pull(b)
	defer stop()
	for va := range a {
		vb, ok := next()
		if !ok || !eq(va, vb) {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// Equal is EqualFunc using ==.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// CompareFunc compares a and b lexicographically. A sequence that is a
// proper prefix of the other compares as lesser.
func CompareFunc[A, B any](a iter.Seq[A], b iter.Seq[B], cmp func(A, B) int) int {
	next, stop := iter.Pull(b)
	defer stop()
	for va := range a {
		vb, ok := next()
		if !ok {
			return 1
		}
		if c := cmp(va, vb); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// Compare is CompareFunc using cmp.Compare.
func Compare[T cmp.Ordered](a, b iter.Seq[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// HashFunc feeds every element of s to h, in order, through write.
func HashFunc[T any](h *maphash.Hash, s iter.Seq[T], write func(*maphash.Hash, T)) {
	for v := range s {
		write(h, v)
	}
}

// Hash returns the combined hash of the elements of s under seed. Each
// element is hashed on its own and the per-element hashes are folded in
// order, followed by the element count.
func Hash[T comparable](seed maphash.Seed, s iter.Seq[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var n uint64
	for v := range s {
		maphash.WriteComparable(&h, maphash.Comparable(seed, v))
		n++
	}
	maphash.WriteComparable(&h, n)
	return h.Sum64()
}

// Format renders s as "[e1, e2, ..., en]", or "[]" when s is empty.
func Format[T any](s iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range s {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

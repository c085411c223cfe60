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

// Package sortutil contains elementary in-place sorting routines.
package sortutil

import (
	"cmp"
	"fmt"

	"github.com/snapcore/containers/strutil"
)

// Selection sorts s by repeatedly swapping the smallest remaining element
// into place.
func Selection[T cmp.Ordered](s []T) {
	for i := range s {
		smallest := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[smallest] {
				smallest = j
			}
		}
		s[i], s[smallest] = s[smallest], s[i]
	}
}

// Bubble sorts s by swapping adjacent out-of-order elements.
func Bubble[T cmp.Ordered](s []T) {
	for i := range s {
		for j := 0; j < len(s)-1-i; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}

// Insertion sorts s by moving each element left past the larger ones before
// it. It is stable.
func Insertion[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// MaxCountingSpan is the largest number of distinct keys, from the smallest
// to the largest, that Counting accepts.
const MaxCountingSpan = 1 << 20

// Counting sorts s by counting the occurrences of each key. discrete maps an
// element to its integer key and reveal maps a key back to an element. If
// the keys of s span more than MaxCountingSpan values an error is returned
// and s is left untouched.
func Counting[T any](s []T, discrete func(T) int, reveal func(int) T) error {
	if len(s) == 0 {
		return nil
	}
	lo, hi := discrete(s[0]), discrete(s[0])
	for _, e := range s[1:] {
		k := discrete(e)
		lo = min(lo, k)
		hi = max(hi, k)
	}
	// hi >= lo, so the difference is exact as an unsigned value
	if span := uint(hi) - uint(lo); span >= MaxCountingSpan {
		return fmt.Errorf("cannot count-sort: key range [%d, %d] too large", lo, hi)
	}
	counts := make([]int, hi-lo+1)
	for _, e := range s {
		counts[discrete(e)-lo]++
	}
	pos := 0
	for k, n := range counts {
		for ; n > 0; n-- {
			s[pos] = reveal(k + lo)
			pos++
		}
	}
	return nil
}

func identity(i int) int { return i }

func infallible(sort func([]int)) func([]int) error {
	return func(s []int) error {
		sort(s)
		return nil
	}
}

var byName = map[string]func([]int) error{
	"selection": infallible(Selection[int]),
	"bubble":    infallible(Bubble[int]),
	"insertion": infallible(Insertion[int]),
	"counting": func(s []int) error {
		return Counting(s, identity, identity)
	},
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	return strutil.SortedKeys(byName)
}

// ByName returns the integer sort routine with the given name. Only the
// counting sort can fail, when the keys span too wide a range.
func ByName(name string) (func([]int) error, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown sort algorithm %q (expected one of %s)", name, strutil.Quoted(Names()))
	}
	return f, nil
}

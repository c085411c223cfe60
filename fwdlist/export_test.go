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

// Cells returns the cells of the chain of l in order.
func Cells[T any](l *List[T]) []*cell[T] {
	var cells []*cell[T]
	for c := l.head; c != nil; c = c.next {
		cells = append(cells, c)
	}
	return cells
}

// Unlinked reports whether a cell no longer holds a value nor a successor.
func Unlinked[T comparable](c *cell[T]) bool {
	var zero T
	return c.next == nil && c.value == zero
}

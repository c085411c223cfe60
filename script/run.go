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

package script

import (
	"fmt"
	"io"
	"slices"

	"github.com/mattn/go-runewidth"
	"golang.org/x/xerrors"

	"github.com/snapcore/containers/container"
	"github.com/snapcore/containers/logger"
	"github.com/snapcore/containers/sortutil"
	"github.com/snapcore/containers/strutil"
)

// DefaultSortAlgo is used by sort steps that do not name an algorithm.
const DefaultSortAlgo = "insertion"

// Runner executes scripts against the list implementation L.
type Runner[L container.List[int, L]] struct {
	// New returns an empty list.
	New func() L
	// Out receives the transcript.
	Out io.Writer

	lists map[string]L
}

// Run executes every step of s in order, stopping at the first failing one.
func (r *Runner[L]) Run(s *Script) error {
	r.lists = make(map[string]L, len(s.Lists))
	for name, values := range s.Lists {
		l := r.New()
		l.Extend(slices.Values(values))
		r.lists[name] = l
	}

	for i := range s.Steps {
		step := &s.Steps[i]
		logger.Debugf("running step %d: %s", i+1, step)
		if err := r.runStep(step); err != nil {
			logger.Noticef("script failed at step %d: %v", i+1, err)
			return xerrors.Errorf("step %d (%s): %w", i+1, step, err)
		}
	}
	return nil
}

// Lists returns the lists as left by the last Run.
func (r *Runner[L]) Lists() map[string]L {
	return r.lists
}

func (r *Runner[L]) list(name string) (L, error) {
	l, ok := r.lists[name]
	if !ok {
		return l, fmt.Errorf("no list named %q", name)
	}
	return l, nil
}

func (r *Runner[L]) printf(format string, v ...interface{}) {
	fmt.Fprintf(r.Out, format, v...)
}

func optional(v int, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}

func (r *Runner[L]) runStep(step *Step) error {
	if step.Op == OpShow {
		return r.show(step.List)
	}

	l, err := r.list(step.List)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpPushFront:
		l.PushFront(*step.Value)
	case OpPushBack:
		l.PushBack(*step.Value)
	case OpPopFront:
		v, ok := l.PopFront()
		r.printf("%s: %s\n", step, optional(v, ok))
	case OpPopBack:
		v, ok := l.PopBack()
		r.printf("%s: %s\n", step, optional(v, ok))
	case OpFront:
		v, ok := l.Front()
		r.printf("%s: %s\n", step, optional(v, ok))
	case OpBack:
		v, ok := l.Back()
		r.printf("%s: %s\n", step, optional(v, ok))
	case OpLen:
		r.printf("%s: %d\n", step, l.Len())
	case OpContains:
		found := l.ContainsFunc(func(v int) bool { return v == *step.Value })
		r.printf("%s %d: %t\n", step, *step.Value, found)
	case OpAppend:
		other, err := r.list(step.From)
		if err != nil {
			return err
		}
		if step.From == step.List {
			return fmt.Errorf("cannot append list %q to itself", step.List)
		}
		l.Append(other)
	case OpSplitOff:
		second, err := l.SplitOff(step.At)
		if err != nil {
			return err
		}
		r.lists[step.Into] = second
	case OpClone:
		r.lists[step.Into] = l.Clone()
	case OpClear:
		l.Clear()
	case OpSort:
		return sortList(l, step.Algo)
	default:
		return fmt.Errorf("unknown operation %q", step.Op)
	}
	return nil
}

// sortList drains l, sorts the values and pushes them back.
func sortList[L container.List[int, L]](l L, algo string) error {
	if algo == "" {
		algo = DefaultSortAlgo
	}
	sortFunc, err := sortutil.ByName(algo)
	if err != nil {
		return err
	}
	values := slices.Collect(l.Drain())
	err = sortFunc(values)
	// on failure the values are put back in their original order
	l.Extend(slices.Values(values))
	return err
}

func (r *Runner[L]) show(name string) error {
	if name != "" {
		l, err := r.list(name)
		if err != nil {
			return err
		}
		r.printf("%s %s\n", name, l)
		return nil
	}

	names := strutil.SortedKeys(r.lists)
	width := 0
	for _, name := range names {
		width = max(width, runewidth.StringWidth(name))
	}
	for _, name := range names {
		r.printf("%s  %s\n", runewidth.FillRight(name, width), r.lists[name])
	}
	return nil
}

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

// Package script runs YAML descriptions of list manipulations against any
// implementation of container.List and writes a transcript of the results.
//
// A script names a set of initial lists and a sequence of steps:
//
//	lists:
//	  a: [1, 2, 3]
//	steps:
//	  - op: push-back
//	    list: a
//	    value: 4
//	  - op: split-off
//	    list: a
//	    at: 2
//	    into: b
//	  - op: show
package script

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Op names a list operation.
type Op string

const (
	OpPushFront Op = "push-front"
	OpPushBack  Op = "push-back"
	OpPopFront  Op = "pop-front"
	OpPopBack   Op = "pop-back"
	OpFront     Op = "front"
	OpBack      Op = "back"
	OpLen       Op = "len"
	OpContains  Op = "contains"
	OpAppend    Op = "append"
	OpSplitOff  Op = "split-off"
	OpClear     Op = "clear"
	OpClone     Op = "clone"
	OpSort      Op = "sort"
	OpShow      Op = "show"
)

// Step is a single operation of a script.
type Step struct {
	Op Op `yaml:"op"`
	// List is the list the operation applies to. It is optional for show,
	// which then prints every list.
	List string `yaml:"list,omitempty"`
	// Value is the operand of push-front, push-back and contains.
	Value *int `yaml:"value,omitempty"`
	// At is the split position of split-off.
	At int `yaml:"at,omitempty"`
	// From is the list appended by append.
	From string `yaml:"from,omitempty"`
	// Into names the list created by split-off and clone.
	Into string `yaml:"into,omitempty"`
	// Algo selects the routine used by sort.
	Algo string `yaml:"algo,omitempty"`
}

func (s *Step) String() string {
	if s.List == "" {
		return string(s.Op)
	}
	return fmt.Sprintf("%s %s", s.Op, s.List)
}

// Script is a parsed list-manipulation script.
type Script struct {
	Lists map[string][]int `yaml:"lists"`
	Steps []Step           `yaml:"steps"`
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, xerrors.Errorf("cannot parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (s *Script) validate() error {
	for name := range s.Lists {
		if name == "" {
			return fmt.Errorf("invalid script: list name cannot be empty")
		}
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return fmt.Errorf("invalid script: step %d: %v", i+1, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	switch s.Op {
	case OpShow:
		return nil
	case OpPushFront, OpPushBack, OpContains:
		if s.Value == nil {
			return fmt.Errorf("%s requires a value", s.Op)
		}
	case OpAppend:
		if s.From == "" {
			return fmt.Errorf("append requires a list to append from")
		}
	case OpSplitOff, OpClone:
		if s.Into == "" {
			return fmt.Errorf("%s requires a list to create", s.Op)
		}
	case OpPopFront, OpPopBack, OpFront, OpBack, OpLen, OpClear, OpSort:
	case "":
		return fmt.Errorf("missing operation")
	default:
		return fmt.Errorf("unknown operation %q", s.Op)
	}
	if s.List == "" {
		return fmt.Errorf("%s requires a list", s.Op)
	}
	return nil
}

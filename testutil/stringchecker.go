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

package testutil

import (
	"fmt"

	"gopkg.in/check.v1"
)

// StringEquals checks that a fmt.Stringer renders as the expected string.
var StringEquals check.Checker = &stringEqualsChecker{
	&check.CheckerInfo{Name: "StringEquals", Params: []string{"obtained", "expected"}},
}

type stringEqualsChecker struct {
	*check.CheckerInfo
}

func (*stringEqualsChecker) Check(params []interface{}, names []string) (result bool, errMsg string) {
	expected, ok := params[1].(string)
	if !ok {
		return false, fmt.Sprintf("expected must be a string, not %T", params[1])
	}
	s, ok := params[0].(fmt.Stringer)
	if !ok {
		return false, fmt.Sprintf("obtained value of type %T is not a fmt.Stringer", params[0])
	}
	if got := s.String(); got != expected {
		return false, fmt.Sprintf("obtained renders as %q", got)
	}
	return true, ""
}

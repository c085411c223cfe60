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
	"reflect"
	"strings"

	"gopkg.in/check.v1"
)

type containsChecker struct {
	*check.CheckerInfo
}

// Contains is a Checker that looks for an element in a container. The
// container can be a slice, an array, a map (its values are searched) or a
// string, in which case the element must be a string too.
var Contains check.Checker = &containsChecker{
	&check.CheckerInfo{Name: "Contains", Params: []string{"container", "elem"}},
}

func (c *containsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	container, elem := params[0], params[1]

	v := reflect.ValueOf(container)
	switch v.Kind() {
	case reflect.String:
		s, ok := elem.(string)
		if !ok {
			return false, fmt.Sprintf("element is a %T but expected a string", elem)
		}
		return strings.Contains(v.String(), s), ""
	case reflect.Slice, reflect.Array, reflect.Map:
	default:
		return false, fmt.Sprintf("%T is not a supported container", container)
	}

	ev := reflect.ValueOf(elem)
	if !ev.IsValid() || ev.Type() != v.Type().Elem() {
		return false, fmt.Sprintf("container has items of type %s but expected element is a %T", v.Type().Elem(), elem)
	}
	if v.Kind() == reflect.Map {
		iter := v.MapRange()
		for iter.Next() {
			if reflect.DeepEqual(iter.Value().Interface(), elem) {
				return true, ""
			}
		}
		return false, ""
	}
	for i := 0; i < v.Len(); i++ {
		if reflect.DeepEqual(v.Index(i).Interface(), elem) {
			return true, ""
		}
	}
	return false, ""
}

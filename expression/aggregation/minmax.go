// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aggregation

import "github.com/vtl-lang/vtl"

type minmaxBuffer struct {
	value vtl.Value
	set   bool
}

// MinMax implements both `min` and `max`: result type matches input type.
// Nulls sort before non-nulls under natural order, so they win for min and
// lose for max. Empty input is null.
type MinMax struct {
	Child vtl.ResolvableExpression
	isMin bool
}

// NewMin builds the `min` reducer over child.
func NewMin(child vtl.ResolvableExpression) *MinMax {
	return &MinMax{Child: child, isMin: true}
}

// NewMax builds the `max` reducer over child.
func NewMax(child vtl.ResolvableExpression) *MinMax {
	return &MinMax{Child: child, isMin: false}
}

func (m *MinMax) Name() string {
	if m.isMin {
		return "min"
	}
	return "max"
}

func (m *MinMax) Type() vtl.Type    { return m.Child.Type() }
func (m *MinMax) NewBuffer() Buffer { return &minmaxBuffer{} }

func (m *MinMax) Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error {
	v, err := m.Child.Resolve(ctx.WithDataPoint(row))
	if err != nil {
		return err
	}
	b := buf.(*minmaxBuffer)
	if !b.set || m.better(v, b.value) {
		b.value = v
		b.set = true
	}
	return nil
}

// better reports whether candidate should replace current under this
// reducer's ordering: nulls are always "less than" non-nulls.
func (m *MinMax) better(candidate, current vtl.Value) bool {
	cmp := compareNullable(candidate, current)
	if m.isMin {
		return cmp < 0
	}
	return cmp > 0
}

func (m *MinMax) Merge(ctx *vtl.Context, dst, src Buffer) error {
	d, s := dst.(*minmaxBuffer), src.(*minmaxBuffer)
	if !s.set {
		return nil
	}
	if !d.set || m.better(s.value, d.value) {
		d.value = s.value
		d.set = true
	}
	return nil
}

func (m *MinMax) Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error) {
	b := buf.(*minmaxBuffer)
	if !b.set {
		return vtl.Null(m.Type()), nil
	}
	return b.value, nil
}

// compareNullable orders two values the way min/max require: null before
// non-null, then natural order within a shared type.
func compareNullable(a, b vtl.Value) int {
	if a.IsNull() && b.IsNull() {
		return 0
	}
	if a.IsNull() {
		return -1
	}
	if b.IsNull() {
		return 1
	}
	switch a.Type() {
	case vtl.String:
		switch {
		case a.Str() < b.Str():
			return -1
		case a.Str() > b.Str():
			return 1
		default:
			return 0
		}
	case vtl.Boolean:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		default:
			return 1
		}
	default: // Integer, Number
		an, bn := a.AsNumber(), b.AsNumber()
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
}

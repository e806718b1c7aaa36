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

import (
	"sort"

	"github.com/vtl-lang/vtl"
)

type medianBuffer struct {
	values  []float64
	sawNull bool
}

// Median is the `median` reducer: Number result. If any input is null, the
// result is null; otherwise the values are sorted ascending and the middle
// (even count: average of the two middle values) is returned. Empty input
// is null.
type Median struct {
	Child vtl.ResolvableExpression
}

// NewMedian builds the `median` reducer over child.
func NewMedian(child vtl.ResolvableExpression) (*Median, error) {
	if err := requireNumeric("median", child); err != nil {
		return nil, err
	}
	return &Median{Child: child}, nil
}

func (m *Median) Name() string      { return "median" }
func (m *Median) Type() vtl.Type    { return vtl.Number }
func (m *Median) NewBuffer() Buffer { return &medianBuffer{} }

func (m *Median) Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error {
	v, err := m.Child.Resolve(ctx.WithDataPoint(row))
	if err != nil {
		return err
	}
	b := buf.(*medianBuffer)
	if v.IsNull() {
		b.sawNull = true
		return nil
	}
	b.values = append(b.values, v.AsNumber())
	return nil
}

func (m *Median) Merge(ctx *vtl.Context, dst, src Buffer) error {
	d, s := dst.(*medianBuffer), src.(*medianBuffer)
	d.values = append(d.values, s.values...)
	d.sawNull = d.sawNull || s.sawNull
	return nil
}

func (m *Median) Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error) {
	b := buf.(*medianBuffer)
	if b.sawNull || len(b.values) == 0 {
		return vtl.Null(vtl.Number), nil
	}
	sorted := make([]float64, len(b.values))
	copy(sorted, b.values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return vtl.NewNumber(sorted[n/2]), nil
	}
	return vtl.NewNumber((sorted[n/2-1] + sorted[n/2]) / 2), nil
}

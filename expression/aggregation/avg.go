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

type avgBuffer struct {
	sum   float64
	count int64
}

// Avg is the `avg` reducer: always Number, nulls skipped, empty group is
// null.
type Avg struct {
	Child vtl.ResolvableExpression
}

// NewAvg builds the `avg` reducer over child.
func NewAvg(child vtl.ResolvableExpression) (*Avg, error) {
	if err := requireNumeric("avg", child); err != nil {
		return nil, err
	}
	return &Avg{Child: child}, nil
}

func (a *Avg) Name() string      { return "avg" }
func (a *Avg) Type() vtl.Type    { return vtl.Number }
func (a *Avg) NewBuffer() Buffer { return &avgBuffer{} }

func (a *Avg) Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error {
	v, err := a.Child.Resolve(ctx.WithDataPoint(row))
	if err != nil {
		return err
	}
	if v.IsNull() {
		return nil
	}
	b := buf.(*avgBuffer)
	b.sum += v.AsNumber()
	b.count++
	return nil
}

func (a *Avg) Merge(ctx *vtl.Context, dst, src Buffer) error {
	d, s := dst.(*avgBuffer), src.(*avgBuffer)
	d.sum += s.sum
	d.count += s.count
	return nil
}

func (a *Avg) Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error) {
	b := buf.(*avgBuffer)
	if b.count == 0 {
		return vtl.Null(vtl.Number), nil
	}
	return vtl.NewNumber(b.sum / float64(b.count)), nil
}

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

type sumBuffer struct {
	isInt bool
	i     int64
	n     float64
}

// Sum is the `sum` reducer: Integer input keeps an Integer result, Number
// input a Number result. Nulls are skipped.
type Sum struct {
	Child      vtl.ResolvableExpression
	resultType vtl.Type
}

// NewSum builds the `sum` reducer over child.
func NewSum(child vtl.ResolvableExpression) (*Sum, error) {
	if err := requireNumeric("sum", child); err != nil {
		return nil, err
	}
	return &Sum{Child: child, resultType: child.Type()}, nil
}

func (s *Sum) Name() string      { return "sum" }
func (s *Sum) Type() vtl.Type    { return s.resultType }
func (s *Sum) NewBuffer() Buffer { return &sumBuffer{isInt: s.resultType == vtl.Integer} }

func (s *Sum) Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error {
	v, err := s.Child.Resolve(ctx.WithDataPoint(row))
	if err != nil {
		return err
	}
	if v.IsNull() {
		return nil
	}
	b := buf.(*sumBuffer)
	if b.isInt {
		b.i += v.Int()
	} else {
		b.n += v.AsNumber()
	}
	return nil
}

func (s *Sum) Merge(ctx *vtl.Context, dst, src Buffer) error {
	d, sr := dst.(*sumBuffer), src.(*sumBuffer)
	d.i += sr.i
	d.n += sr.n
	return nil
}

func (s *Sum) Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error) {
	b := buf.(*sumBuffer)
	if b.isInt {
		return vtl.NewInteger(b.i), nil
	}
	return vtl.NewNumber(b.n), nil
}

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
	"math"

	"github.com/vtl-lang/vtl"
)

type varianceBuffer struct {
	sum     float64
	sumSq   float64
	count   int64
	sawNull bool
}

// varianceKind distinguishes the four dispersion reducers: they share an
// accumulator (sum, sum of squares, count) and differ only in divisor and
// whether the final value is square-rooted.
type varianceKind int

const (
	kindVarPop varianceKind = iota
	kindVarSamp
	kindStddevPop
	kindStddevSamp
)

// Variance implements `var_pop`, `var_samp`, `stddev_pop`, `stddev_samp`.
// Any null input makes the result null. Empty or singleton input is 0.0.
// var_pop/stddev_pop divide by N; var_samp/stddev_samp divide by N-1.
type Variance struct {
	Child vtl.ResolvableExpression
	Kind  varianceKind
}

func newVariance(kind varianceKind, child vtl.ResolvableExpression) (*Variance, error) {
	if err := requireNumeric(varianceName(kind), child); err != nil {
		return nil, err
	}
	return &Variance{Child: child, Kind: kind}, nil
}

func varianceName(k varianceKind) string {
	switch k {
	case kindVarPop:
		return "var_pop"
	case kindVarSamp:
		return "var_samp"
	case kindStddevPop:
		return "stddev_pop"
	default:
		return "stddev_samp"
	}
}

// NewVarPop builds the `var_pop` reducer.
func NewVarPop(child vtl.ResolvableExpression) (*Variance, error) { return newVariance(kindVarPop, child) }

// NewVarSamp builds the `var_samp` reducer.
func NewVarSamp(child vtl.ResolvableExpression) (*Variance, error) {
	return newVariance(kindVarSamp, child)
}

// NewStddevPop builds the `stddev_pop` reducer.
func NewStddevPop(child vtl.ResolvableExpression) (*Variance, error) {
	return newVariance(kindStddevPop, child)
}

// NewStddevSamp builds the `stddev_samp` reducer.
func NewStddevSamp(child vtl.ResolvableExpression) (*Variance, error) {
	return newVariance(kindStddevSamp, child)
}

func (v *Variance) Name() string      { return varianceName(v.Kind) }
func (v *Variance) Type() vtl.Type    { return vtl.Number }
func (v *Variance) NewBuffer() Buffer { return &varianceBuffer{} }

func (v *Variance) Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error {
	val, err := v.Child.Resolve(ctx.WithDataPoint(row))
	if err != nil {
		return err
	}
	b := buf.(*varianceBuffer)
	if val.IsNull() {
		b.sawNull = true
		return nil
	}
	x := val.AsNumber()
	b.sum += x
	b.sumSq += x * x
	b.count++
	return nil
}

func (v *Variance) Merge(ctx *vtl.Context, dst, src Buffer) error {
	d, s := dst.(*varianceBuffer), src.(*varianceBuffer)
	d.sum += s.sum
	d.sumSq += s.sumSq
	d.count += s.count
	d.sawNull = d.sawNull || s.sawNull
	return nil
}

func (v *Variance) Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error) {
	b := buf.(*varianceBuffer)
	if b.sawNull {
		return vtl.Null(vtl.Number), nil
	}
	if b.count == 0 {
		return vtl.NewNumber(0.0), nil
	}

	n := float64(b.count)
	mean := b.sum / n
	sumSqDev := b.sumSq - n*mean*mean
	if sumSqDev < 0 {
		sumSqDev = 0
	}

	var variance float64
	switch v.Kind {
	case kindVarPop, kindStddevPop:
		variance = sumSqDev / n
	default:
		if b.count < 2 {
			return vtl.NewNumber(0.0), nil
		}
		variance = sumSqDev / (n - 1)
	}

	if v.Kind == kindStddevPop || v.Kind == kindStddevSamp {
		return vtl.NewNumber(math.Sqrt(variance)), nil
	}
	return vtl.NewNumber(variance), nil
}

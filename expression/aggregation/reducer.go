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

// Package aggregation provides the statistical Reducers the aggregate
// dataset operator folds grouped data-point streams through: count, sum,
// avg, median, min, max, stddev_pop/samp, var_pop/samp. Every reducer is a
// four-part fold — NewBuffer supplies an accumulator, Update folds one row
// in, Merge combines two accumulators, Eval reads the final value — so the
// combine step stays associative and future parallel execution stays an
// option without changing any reducer's interface.
package aggregation

import "github.com/vtl-lang/vtl"

// Buffer is a reducer's mutable accumulator. Its concrete type is private
// to the Reducer that created it via NewBuffer.
type Buffer interface{}

// Reducer is the type-directed, four-part statistical fold every
// aggregate function implements.
type Reducer interface {
	// Name is the VTL aggregate function name, e.g. "sum".
	Name() string
	// Type is the reducer's declared result type.
	Type() vtl.Type
	// NewBuffer supplies a fresh, zero-valued accumulator.
	NewBuffer() Buffer
	// Update folds one data point into buf's accumulator, resolving this
	// reducer's child expression (if any) against the row in ctx.
	Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error
	// Merge combines src into dst. Associative: Merge(Merge(a,b),c) ==
	// Merge(a,Merge(b,c)).
	Merge(ctx *vtl.Context, dst, src Buffer) error
	// Eval reads the accumulator's final value.
	Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error)
}

// requireNumeric validates that a reducer's child expression is Integer or
// Number, the input type sum/avg/median/stddev/var all require.
func requireNumeric(name string, child vtl.ResolvableExpression) error {
	t := child.Type()
	if t != vtl.Integer && t != vtl.Number {
		return vtl.ErrUnsupportedType.New(name + "(" + t.String() + ")")
	}
	return nil
}

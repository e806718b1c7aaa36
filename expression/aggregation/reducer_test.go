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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
	"github.com/vtl-lang/vtl/expression"
)

func measureStructure(t *testing.T, typ vtl.Type) vtl.DataStructure {
	t.Helper()
	ds, err := vtl.NewDataStructure(vtl.NewComponent("amount", typ, vtl.RoleMeasure))
	require.NoError(t, err)
	return ds
}

func fold(t *testing.T, r Reducer, structure vtl.DataStructure, values ...vtl.Value) vtl.Value {
	t.Helper()
	ctx := vtl.NewEmptyContext()
	buf := r.NewBuffer()
	for _, v := range values {
		row, err := vtl.NewDataPoint(structure, []vtl.Value{v})
		require.NoError(t, err)
		require.NoError(t, r.Update(ctx, buf, row))
	}
	v, err := r.Eval(ctx, buf)
	require.NoError(t, err)
	return v
}

func TestCountCountsNulls(t *testing.T) {
	structure := measureStructure(t, vtl.Integer)
	c := NewCount()
	v := fold(t, c, structure, vtl.NewInteger(1), vtl.Null(vtl.Integer), vtl.NewInteger(3))
	require.Equal(t, int64(3), v.Int())
}

func TestSumSkipsNullsPreservesInteger(t *testing.T) {
	structure := measureStructure(t, vtl.Integer)
	sum, err := NewSum(expression.NewGetField("amount", vtl.Integer))
	require.NoError(t, err)
	v := fold(t, sum, structure, vtl.NewInteger(2), vtl.Null(vtl.Integer), vtl.NewInteger(3))
	require.Equal(t, vtl.Integer, v.Type())
	require.Equal(t, int64(5), v.Int())
}

func TestSumRejectsNonNumericChild(t *testing.T) {
	_, err := NewSum(expression.NewGetField("amount", vtl.String))
	require.Error(t, err)
}

func TestAvgSkipsNullsEmptyIsNull(t *testing.T) {
	structure := measureStructure(t, vtl.Number)
	avg, err := NewAvg(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)

	v := fold(t, avg, structure, vtl.NewNumber(1), vtl.NewNumber(2), vtl.NewNumber(3))
	require.Equal(t, 2.0, v.Num())

	empty := fold(t, avg, structure)
	require.True(t, empty.IsNull())
}

func TestMedianOddAndEvenCounts(t *testing.T) {
	structure := measureStructure(t, vtl.Number)
	median, err := NewMedian(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)

	odd := fold(t, median, structure, vtl.NewNumber(3), vtl.NewNumber(1), vtl.NewNumber(2))
	require.Equal(t, 2.0, odd.Num())

	even := fold(t, median, structure, vtl.NewNumber(1), vtl.NewNumber(2), vtl.NewNumber(3), vtl.NewNumber(4))
	require.Equal(t, 2.5, even.Num())
}

func TestMedianAnyNullYieldsNull(t *testing.T) {
	structure := measureStructure(t, vtl.Number)
	median, err := NewMedian(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)
	v := fold(t, median, structure, vtl.NewNumber(1), vtl.Null(vtl.Number))
	require.True(t, v.IsNull())
}

func TestMinMax(t *testing.T) {
	structure := measureStructure(t, vtl.Integer)
	min := NewMin(expression.NewGetField("amount", vtl.Integer))
	max := NewMax(expression.NewGetField("amount", vtl.Integer))

	minV := fold(t, min, structure, vtl.NewInteger(5), vtl.NewInteger(1), vtl.NewInteger(3))
	require.Equal(t, int64(1), minV.Int())

	maxV := fold(t, max, structure, vtl.NewInteger(5), vtl.NewInteger(1), vtl.NewInteger(3))
	require.Equal(t, int64(5), maxV.Int())
}

func TestMinMaxEmptyIsNull(t *testing.T) {
	structure := measureStructure(t, vtl.Integer)
	min := NewMin(expression.NewGetField("amount", vtl.Integer))
	v := fold(t, min, structure)
	require.True(t, v.IsNull())
}

func TestVarPopAndStddevPop(t *testing.T) {
	structure := measureStructure(t, vtl.Number)
	varPop, err := NewVarPop(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)
	stddevPop, err := NewStddevPop(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)

	values := []vtl.Value{vtl.NewNumber(2), vtl.NewNumber(4), vtl.NewNumber(4), vtl.NewNumber(4), vtl.NewNumber(5), vtl.NewNumber(5), vtl.NewNumber(7), vtl.NewNumber(9)}

	v := fold(t, varPop, structure, values...)
	require.InDelta(t, 4.0, v.Num(), 1e-9)

	s := fold(t, stddevPop, structure, values...)
	require.InDelta(t, 2.0, s.Num(), 1e-9)
}

func TestVarianceSingletonIsZero(t *testing.T) {
	structure := measureStructure(t, vtl.Number)
	varSamp, err := NewVarSamp(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)
	v := fold(t, varSamp, structure, vtl.NewNumber(5))
	require.Equal(t, 0.0, v.Num())
}

func TestVarianceAnyNullYieldsNull(t *testing.T) {
	structure := measureStructure(t, vtl.Number)
	varPop, err := NewVarPop(expression.NewGetField("amount", vtl.Number))
	require.NoError(t, err)
	v := fold(t, varPop, structure, vtl.NewNumber(1), vtl.Null(vtl.Number))
	require.True(t, v.IsNull())
}

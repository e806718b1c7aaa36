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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
)

func numLit(n float64) vtl.ResolvableExpression { return vtl.NewLiteral(vtl.NewNumber(n)) }

func TestAbsPreservesIntegerType(t *testing.T) {
	abs, err := NewAbs(intLit(-5))
	require.NoError(t, err)
	require.Equal(t, vtl.Integer, abs.Type())
	v, err := abs.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int())
}

func TestSqrtAlwaysWidensToNumber(t *testing.T) {
	sqrt, err := NewSqrt(intLit(4))
	require.NoError(t, err)
	require.Equal(t, vtl.Number, sqrt.Type())
	v, err := sqrt.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, 2.0, v.Num())
}

func TestSqrtOfNegativeYieldsNull(t *testing.T) {
	sqrt, err := NewSqrt(numLit(-1))
	require.NoError(t, err)
	v, err := sqrt.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestRound(t *testing.T) {
	round, err := NewRound(numLit(3.14159), intLit(2))
	require.NoError(t, err)
	v, err := round.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, 3.14, v.Num())
}

func TestTruncTowardsZero(t *testing.T) {
	trunc, err := NewTrunc(numLit(-3.777), intLit(1))
	require.NoError(t, err)
	v, err := trunc.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, -3.7, v.Num())
}

func TestLogBaseOneYieldsNull(t *testing.T) {
	log, err := NewLog(numLit(10), numLit(1))
	require.NoError(t, err)
	v, err := log.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestLogNonPositiveYieldsNull(t *testing.T) {
	log, err := NewLog(numLit(-1), numLit(10))
	require.NoError(t, err)
	v, err := log.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestPower(t *testing.T) {
	power, err := NewPower(numLit(2), numLit(10))
	require.NoError(t, err)
	v, err := power.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, 1024.0, v.Num())
}

func TestModPreservesIntegerType(t *testing.T) {
	mod, err := NewMod(intLit(7), intLit(2))
	require.NoError(t, err)
	require.Equal(t, vtl.Integer, mod.Type())
	v, err := mod.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int())
}

func TestModByZeroYieldsNull(t *testing.T) {
	mod, err := NewMod(intLit(7), intLit(0))
	require.NoError(t, err)
	v, err := mod.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestUnaryNumericRejectsNonNumeric(t *testing.T) {
	_, err := NewAbs(strLit("x"))
	require.Error(t, err)
}

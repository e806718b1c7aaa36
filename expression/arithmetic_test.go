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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
)

func TestArithmeticWidening(t *testing.T) {
	add, err := NewAdd(vtl.NewLiteral(vtl.NewInteger(2)), vtl.NewLiteral(vtl.NewNumber(1.5)))
	require.NoError(t, err)
	require.Equal(t, vtl.Number, add.Type())

	v, err := add.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, 3.5, v.Num())
}

func TestDivAlwaysProducesNumber(t *testing.T) {
	div, err := NewDiv(vtl.NewLiteral(vtl.NewInteger(7)), vtl.NewLiteral(vtl.NewInteger(2)))
	require.NoError(t, err)
	require.Equal(t, vtl.Number, div.Type())

	v, err := div.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, 3.5, v.Num())
}

func TestDivByZeroYieldsNull(t *testing.T) {
	div, err := NewDiv(vtl.NewLiteral(vtl.NewInteger(1)), vtl.NewLiteral(vtl.NewInteger(0)))
	require.NoError(t, err)

	v, err := div.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestNullOperandPropagates(t *testing.T) {
	add, err := NewAdd(vtl.NewLiteral(vtl.Null(vtl.Integer)), vtl.NewLiteral(vtl.NewInteger(1)))
	require.NoError(t, err)

	v, err := add.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestIntegerOverflowSaturates(t *testing.T) {
	vtl.New(nil, &vtl.Config{Overflow: vtl.OverflowSaturate})

	add, err := NewAdd(
		vtl.NewLiteral(vtl.NewInteger(math.MaxInt64)),
		vtl.NewLiteral(vtl.NewInteger(1)),
	)
	require.NoError(t, err)

	v, err := add.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), v.Int())
}

func TestUnsupportedTypeRejected(t *testing.T) {
	_, err := NewAdd(vtl.NewLiteral(vtl.NewString("x")), vtl.NewLiteral(vtl.NewInteger(1)))
	require.Error(t, err)
}

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

func TestIfSelectsBranch(t *testing.T) {
	ifExpr, err := NewIf(boolLit(true),
		vtl.NewLiteral(vtl.NewInteger(1)),
		vtl.NewLiteral(vtl.NewInteger(2)))
	require.NoError(t, err)

	v, err := ifExpr.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int())
}

func TestIfNullConditionYieldsNull(t *testing.T) {
	ifExpr, err := NewIf(nullBoolLit(),
		vtl.NewLiteral(vtl.NewInteger(1)),
		vtl.NewLiteral(vtl.NewInteger(2)))
	require.NoError(t, err)

	v, err := ifExpr.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
	require.Equal(t, vtl.Integer, v.Type())
}

func TestIfWidensNumericBranches(t *testing.T) {
	ifExpr, err := NewIf(boolLit(false),
		vtl.NewLiteral(vtl.NewInteger(1)),
		vtl.NewLiteral(vtl.NewNumber(2.5)))
	require.NoError(t, err)
	require.Equal(t, vtl.Number, ifExpr.Type())
}

func TestIfRejectsIncompatibleBranches(t *testing.T) {
	_, err := NewIf(boolLit(true),
		vtl.NewLiteral(vtl.NewString("x")),
		vtl.NewLiteral(vtl.NewInteger(1)))
	require.Error(t, err)
}

func TestIsNullNeverNullItself(t *testing.T) {
	isNull := NewIsNull(vtl.NewLiteral(vtl.Null(vtl.Integer)))
	v, err := isNull.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.False(t, v.IsNull())
	require.True(t, v.Bool())
}

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

package vtl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueNullIsTypedNotAbsent(t *testing.T) {
	v := Null(Integer)
	require.True(t, v.IsNull())
	require.Equal(t, Integer, v.Type())
}

func TestValueAsNumberWidensInteger(t *testing.T) {
	require.Equal(t, 5.0, NewInteger(5).AsNumber())
	require.Equal(t, 2.5, NewNumber(2.5).AsNumber())
}

func TestValueEqualNullIsEqualToNull(t *testing.T) {
	require.True(t, Null(String).Equal(Null(String)))
	require.False(t, Null(String).Equal(NewString("")))
}

func TestValueEqualRequiresSameType(t *testing.T) {
	require.False(t, NewInteger(1).Equal(NewNumber(1)))
}

func TestValueEqualComparesPayload(t *testing.T) {
	require.True(t, NewString("a").Equal(NewString("a")))
	require.False(t, NewString("a").Equal(NewString("b")))
	require.True(t, NewBoolean(true).Equal(NewBoolean(true)))
}

func TestValueStringFormatting(t *testing.T) {
	require.Equal(t, "null", Null(Integer).String())
	require.Equal(t, "42", NewInteger(42).String())
	require.Equal(t, "true", NewBoolean(true).String())
}

func TestWidenNumeric(t *testing.T) {
	require.Equal(t, Number, WidenNumeric(Integer, Number))
	require.Equal(t, Number, WidenNumeric(Number, Integer))
	require.Equal(t, Integer, WidenNumeric(Integer, Integer))
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "Integer", Integer.String())
	require.Equal(t, "Dataset", Dataset.String())
}

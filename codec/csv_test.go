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

package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
)

func testStructure(t *testing.T) vtl.DataStructure {
	t.Helper()
	ds, err := vtl.NewDataStructure(
		vtl.NewComponent("id", vtl.String, vtl.RoleIdentifier),
		vtl.NewComponent("amount", vtl.Number, vtl.RoleMeasure),
		vtl.NewComponent("active", vtl.Boolean, vtl.RoleAttribute),
	)
	require.NoError(t, err)
	return ds
}

func TestDecodeCSV(t *testing.T) {
	structure := testStructure(t)
	src := "a,1.5,true\nb,,false\n"

	rows, err := DecodeCSV(strings.NewReader(src), structure)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	v, ok := rows[0].Get("amount")
	require.True(t, ok)
	require.Equal(t, 1.5, v.Num())

	empty, ok := rows[1].Get("amount")
	require.True(t, ok)
	require.True(t, empty.IsNull())
}

func TestDecodeCSVRejectsBadType(t *testing.T) {
	structure := testStructure(t)
	src := "a,not-a-number,true\n"
	_, err := DecodeCSV(strings.NewReader(src), structure)
	require.Error(t, err)
}

func TestEncodeCSVRoundTrip(t *testing.T) {
	structure := testStructure(t)
	row, err := vtl.NewDataPoint(structure, []vtl.Value{
		vtl.NewString("a"), vtl.NewNumber(2.5), vtl.Null(vtl.Boolean),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, []vtl.DataPoint{row}))

	decoded, err := DecodeCSV(&buf, structure)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	v, _ := decoded[0].Get("active")
	require.True(t, v.IsNull())
}

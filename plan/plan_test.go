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

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
	"github.com/vtl-lang/vtl/memory"
)

func mustStruct(t *testing.T, components ...vtl.Component) vtl.DataStructure {
	t.Helper()
	ds, err := vtl.NewDataStructure(components...)
	require.NoError(t, err)
	return ds
}

func mustPoint(t *testing.T, structure vtl.DataStructure, values ...vtl.Value) vtl.DataPoint {
	t.Helper()
	dp, err := vtl.NewDataPoint(structure, values)
	require.NoError(t, err)
	return dp
}

func mustTable(t *testing.T, structure vtl.DataStructure, rows ...vtl.DataPoint) *memory.Table {
	t.Helper()
	tbl, err := memory.NewTable(structure, rows)
	require.NoError(t, err)
	return tbl
}

func drain(t *testing.T, ds vtl.Dataset) []vtl.DataPoint {
	t.Helper()
	rows, err := vtl.Materialize(vtl.NewEmptyContext(), ds)
	require.NoError(t, err)
	return rows
}

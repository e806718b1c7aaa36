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

package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
)

func TestTableIterationIsRestartable(t *testing.T) {
	structure, err := vtl.NewDataStructure(vtl.NewComponent("id", vtl.String, vtl.RoleIdentifier))
	require.NoError(t, err)
	row, err := vtl.NewDataPoint(structure, []vtl.Value{vtl.NewString("a")})
	require.NoError(t, err)

	table, err := NewTable(structure, []vtl.DataPoint{row})
	require.NoError(t, err)

	ctx := vtl.NewEmptyContext()
	first, err := vtl.Materialize(ctx, table)
	require.NoError(t, err)
	second, err := vtl.Materialize(ctx, table)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.True(t, first[0].Equal(second[0]))
}

func TestTableRejectsStructureMismatch(t *testing.T) {
	structure, err := vtl.NewDataStructure(vtl.NewComponent("id", vtl.String, vtl.RoleIdentifier))
	require.NoError(t, err)
	other, err := vtl.NewDataStructure(vtl.NewComponent("other", vtl.String, vtl.RoleIdentifier))
	require.NoError(t, err)
	row, err := vtl.NewDataPoint(other, []vtl.Value{vtl.NewString("a")})
	require.NoError(t, err)

	_, err = NewTable(structure, []vtl.DataPoint{row})
	require.Error(t, err)
}

func TestTableAppendIsImmutable(t *testing.T) {
	structure, err := vtl.NewDataStructure(vtl.NewComponent("id", vtl.String, vtl.RoleIdentifier))
	require.NoError(t, err)
	table, err := NewTable(structure, nil)
	require.NoError(t, err)

	row, err := vtl.NewDataPoint(structure, []vtl.Value{vtl.NewString("a")})
	require.NoError(t, err)

	appended, err := table.Append(row)
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())
	require.Equal(t, 1, appended.Len())
}

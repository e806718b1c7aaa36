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
)

func TestRename(t *testing.T) {
	structure := mustStruct(t,
		vtl.NewComponent("id", vtl.String, vtl.RoleIdentifier),
		vtl.NewComponent("old_name", vtl.Number, vtl.RoleMeasure))
	row := mustPoint(t, structure, vtl.NewString("a"), vtl.NewNumber(2.0))
	table := mustTable(t, structure, row)

	r := NewRename(NewResolved(table), map[string]string{"old_name": "new_name"})
	outStruct, err := r.Structure()
	require.NoError(t, err)
	_, ok := outStruct.Component("new_name")
	require.True(t, ok)
	_, ok = outStruct.Component("old_name")
	require.False(t, ok)

	ds, err := r.ResolveDataset(vtl.NewEmptyContext())
	require.NoError(t, err)
	rows := drain(t, ds)
	require.Len(t, rows, 1)
	v, ok := rows[0].Get("new_name")
	require.True(t, ok)
	require.Equal(t, 2.0, v.Num())
}

func TestRenameRejectsCollision(t *testing.T) {
	structure := mustStruct(t,
		vtl.NewComponent("id", vtl.String, vtl.RoleIdentifier),
		vtl.NewComponent("a", vtl.Number, vtl.RoleMeasure),
		vtl.NewComponent("b", vtl.Number, vtl.RoleMeasure))
	table := mustTable(t, structure)

	r := NewRename(NewResolved(table), map[string]string{"a": "b"})
	_, err := r.Structure()
	require.Error(t, err)
}

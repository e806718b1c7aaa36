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

import "github.com/vtl-lang/vtl"

// Rename implements a partial old-to-new component name mapping. Renaming
// into a name already present (and not itself being renamed away) is
// rejected.
type Rename struct {
	datasetNode
	Child   vtl.DatasetExpression
	Mapping map[string]string
}

// NewRename builds the rename operator from an old-name to new-name mapping.
func NewRename(child vtl.DatasetExpression, mapping map[string]string) *Rename {
	return &Rename{Child: child, Mapping: mapping}
}

func (r *Rename) String() string { return "rename(...)" }

func (r *Rename) renamedStructure(child vtl.DataStructure) (vtl.DataStructure, error) {
	survivors := make(map[string]bool, len(child))
	for _, c := range child {
		if _, renamed := r.Mapping[c.Name]; !renamed {
			survivors[c.Name] = true
		}
	}
	out := make([]vtl.Component, len(child))
	for i, c := range child {
		newName, ok := r.Mapping[c.Name]
		if !ok {
			out[i] = c
			continue
		}
		if survivors[newName] {
			return nil, vtl.ErrInvalidArgument.New("rename target collides with existing component: " + newName)
		}
		out[i] = vtl.NewComponent(newName, c.Type, c.Role)
	}
	return vtl.NewDataStructure(out...)
}

func (r *Rename) Structure() (vtl.DataStructure, error) {
	childStruct, err := r.Child.Structure()
	if err != nil {
		return nil, err
	}
	return r.renamedStructure(childStruct)
}

func (r *Rename) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	childDS, err := r.Child.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	structure, err := r.renamedStructure(childDS.Structure())
	if err != nil {
		return nil, err
	}
	return &renamedDataset{structure: structure, child: childDS}, nil
}

type renamedDataset struct {
	structure vtl.DataStructure
	child     vtl.Dataset
}

func (d *renamedDataset) Structure() vtl.DataStructure { return d.structure }

func (d *renamedDataset) Iterator(ctx *vtl.Context) (vtl.RowIter, error) {
	it, err := d.child.Iterator(ctx)
	if err != nil {
		return nil, err
	}
	return &renamedIter{inner: it, structure: d.structure}, nil
}

// renamedIter reuses the child's positional values verbatim: renaming only
// relabels components, it never reorders or drops them.
type renamedIter struct {
	inner     vtl.RowIter
	structure vtl.DataStructure
}

func (it *renamedIter) Next(ctx *vtl.Context) (vtl.DataPoint, error) {
	row, err := it.inner.Next(ctx)
	if err != nil {
		return vtl.DataPoint{}, err
	}
	return vtl.NewDataPoint(it.structure, row.Values())
}

func (it *renamedIter) Close(ctx *vtl.Context) error { return it.inner.Close(ctx) }

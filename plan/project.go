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

// Project implements `keep`/`drop`: the new structure is the named subset
// of components, or its complement. Identifiers may not be dropped.
type Project struct {
	datasetNode
	Child  vtl.DatasetExpression
	Names  []string
	IsDrop bool
}

// NewProject builds the projection operator. names is the keep-list, or
// the drop-list when isDrop is true. Dropping an identifier is rejected.
func NewProject(child vtl.DatasetExpression, names []string, isDrop bool) (*Project, error) {
	if isDrop {
		childStruct, err := child.Structure()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			c, ok := childStruct.Component(n)
			if ok && c.Role == vtl.RoleIdentifier {
				return nil, vtl.ErrInvalidArgument.New("cannot drop identifier component: " + n)
			}
		}
	}
	return &Project{Child: child, Names: names, IsDrop: isDrop}, nil
}

func (p *Project) String() string {
	verb := "keep"
	if p.IsDrop {
		verb = "drop"
	}
	return verb + "(" + joinNames(p.Names) + ")"
}

func (p *Project) projectedStructure(child vtl.DataStructure) (vtl.DataStructure, []int, error) {
	var kept []vtl.Component
	var idx []int
	if p.IsDrop {
		dropSet := toSet(p.Names)
		for i, c := range child {
			if !dropSet[c.Name] {
				kept = append(kept, c)
				idx = append(idx, i)
			}
		}
	} else {
		for _, name := range p.Names {
			i := child.IndexOf(name)
			if i < 0 {
				return nil, nil, vtl.ErrUndefinedReference.New(name)
			}
			kept = append(kept, child[i])
			idx = append(idx, i)
		}
	}
	ds, err := vtl.NewDataStructure(kept...)
	if err != nil {
		return nil, nil, err
	}
	return ds, idx, nil
}

func (p *Project) Structure() (vtl.DataStructure, error) {
	childStruct, err := p.Child.Structure()
	if err != nil {
		return nil, err
	}
	structure, _, err := p.projectedStructure(childStruct)
	return structure, err
}

func (p *Project) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	childDS, err := p.Child.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	structure, idx, err := p.projectedStructure(childDS.Structure())
	if err != nil {
		return nil, err
	}
	return &projectedDataset{structure: structure, idx: idx, child: childDS}, nil
}

type projectedDataset struct {
	structure vtl.DataStructure
	idx       []int
	child     vtl.Dataset
}

func (d *projectedDataset) Structure() vtl.DataStructure { return d.structure }

func (d *projectedDataset) Iterator(ctx *vtl.Context) (vtl.RowIter, error) {
	it, err := d.child.Iterator(ctx)
	if err != nil {
		return nil, err
	}
	return &projectedIter{inner: it, structure: d.structure, idx: d.idx}, nil
}

type projectedIter struct {
	inner     vtl.RowIter
	structure vtl.DataStructure
	idx       []int
}

func (it *projectedIter) Next(ctx *vtl.Context) (vtl.DataPoint, error) {
	row, err := it.inner.Next(ctx)
	if err != nil {
		return vtl.DataPoint{}, err
	}
	values := make([]vtl.Value, len(it.idx))
	for i, pos := range it.idx {
		values[i] = row.At(pos)
	}
	return vtl.NewDataPoint(it.structure, values)
}

func (it *projectedIter) Close(ctx *vtl.Context) error { return it.inner.Close(ctx) }

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

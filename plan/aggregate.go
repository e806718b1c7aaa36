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
	"github.com/vtl-lang/vtl"
	"github.com/vtl-lang/vtl/expression/aggregation"
)

// AggregateDef names one output measure computed by a Reducer.
type AggregateDef struct {
	Name    string
	Reducer aggregation.Reducer
}

// Aggregate groups child's rows by GroupBy (a subset of its identifier
// components) and folds each group through Defs. Output structure is the
// grouping identifiers, in GroupBy order, followed by the aggregated
// measures in Defs order.
type Aggregate struct {
	datasetNode
	Child   vtl.DatasetExpression
	GroupBy []string
	Defs    []AggregateDef
}

// NewAggregate builds the aggregate operator.
func NewAggregate(child vtl.DatasetExpression, groupBy []string, defs []AggregateDef) (*Aggregate, error) {
	childStruct, err := child.Structure()
	if err != nil {
		return nil, err
	}
	for _, name := range groupBy {
		c, ok := childStruct.Component(name)
		if !ok {
			return nil, vtl.ErrUndefinedReference.New(name)
		}
		if c.Role != vtl.RoleIdentifier {
			return nil, vtl.ErrInvalidArgument.New("group-by component is not an identifier: " + name)
		}
	}
	return &Aggregate{Child: child, GroupBy: groupBy, Defs: defs}, nil
}

func (a *Aggregate) String() string { return "aggregate(...)" }

func (a *Aggregate) groupIndexes(child vtl.DataStructure) []int {
	idx := make([]int, len(a.GroupBy))
	for i, name := range a.GroupBy {
		idx[i] = child.IndexOf(name)
	}
	return idx
}

func (a *Aggregate) Structure() (vtl.DataStructure, error) {
	childStruct, err := a.Child.Structure()
	if err != nil {
		return nil, err
	}
	return a.outputStructure(childStruct)
}

func (a *Aggregate) outputStructure(child vtl.DataStructure) (vtl.DataStructure, error) {
	var components []vtl.Component
	for _, idx := range a.groupIndexes(child) {
		components = append(components, child[idx])
	}
	for _, def := range a.Defs {
		components = append(components, vtl.NewComponent(def.Name, def.Reducer.Type(), vtl.RoleMeasure))
	}
	return vtl.NewDataStructure(components...)
}

func (a *Aggregate) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	childDS, err := a.Child.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	childStruct := childDS.Structure()
	structure, err := a.outputStructure(childStruct)
	if err != nil {
		return nil, err
	}
	groupIdx := a.groupIndexes(childStruct)

	rows, err := vtl.Materialize(ctx, childDS)
	if err != nil {
		return nil, err
	}

	type group struct {
		key     vtl.DataPoint
		buffers []aggregation.Buffer
	}
	order := make([]string, 0)
	groups := make(map[string]*group)

	for _, row := range rows {
		keyValues := make([]vtl.Value, len(groupIdx))
		for i, idx := range groupIdx {
			keyValues[i] = row.At(idx)
		}
		key := joinKey(row, groupIdx)
		g, ok := groups[key]
		if !ok {
			keyStruct := make(vtl.DataStructure, len(groupIdx))
			for i, idx := range groupIdx {
				keyStruct[i] = childStruct[idx]
			}
			keyDP, err := vtl.NewDataPoint(keyStruct, keyValues)
			if err != nil {
				return nil, err
			}
			buffers := make([]aggregation.Buffer, len(a.Defs))
			for i, def := range a.Defs {
				buffers[i] = def.Reducer.NewBuffer()
			}
			g = &group{key: keyDP, buffers: buffers}
			groups[key] = g
			order = append(order, key)
		}
		for i, def := range a.Defs {
			if err := def.Reducer.Update(ctx, g.buffers[i], row); err != nil {
				return nil, err
			}
		}
	}

	out := make([]vtl.DataPoint, 0, len(order))
	for _, key := range order {
		g := groups[key]
		values := make([]vtl.Value, 0, len(groupIdx)+len(a.Defs))
		values = append(values, g.key.Values()...)
		for i, def := range a.Defs {
			v, err := def.Reducer.Eval(ctx, g.buffers[i])
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		dp, err := vtl.NewDataPoint(structure, values)
		if err != nil {
			return nil, err
		}
		out = append(out, dp)
	}

	return &memDataset{structure: structure, rows: out}, nil
}

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

// Filter implements `WHERE`-style row restriction: rows for which Cond
// resolves to null are discarded along with rows resolving to false, per
// SQL WHERE semantics.
type Filter struct {
	datasetNode
	Child vtl.DatasetExpression
	Cond  vtl.ResolvableExpression
}

// NewFilter builds the filter operator. cond must be a Boolean expression.
func NewFilter(child vtl.DatasetExpression, cond vtl.ResolvableExpression) (*Filter, error) {
	if cond.Type() != vtl.Boolean {
		return nil, vtl.ErrUnsupportedType.New(cond.Type().String())
	}
	return &Filter{Child: child, Cond: cond}, nil
}

func (f *Filter) String() string { return "filter(" + f.Cond.String() + ")" }

func (f *Filter) Structure() (vtl.DataStructure, error) { return f.Child.Structure() }

func (f *Filter) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	childDS, err := f.Child.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	return &filteredDataset{structure: childDS.Structure(), child: childDS, cond: f.Cond}, nil
}

type filteredDataset struct {
	structure vtl.DataStructure
	child     vtl.Dataset
	cond      vtl.ResolvableExpression
}

func (d *filteredDataset) Structure() vtl.DataStructure { return d.structure }

func (d *filteredDataset) Iterator(ctx *vtl.Context) (vtl.RowIter, error) {
	it, err := d.child.Iterator(ctx)
	if err != nil {
		return nil, err
	}
	return &filteredIter{ctx: ctx, inner: it, cond: d.cond}, nil
}

type filteredIter struct {
	ctx   *vtl.Context
	inner vtl.RowIter
	cond  vtl.ResolvableExpression
}

func (it *filteredIter) Next(ctx *vtl.Context) (vtl.DataPoint, error) {
	for {
		row, err := it.inner.Next(ctx)
		if err != nil {
			return vtl.DataPoint{}, err
		}
		keep, err := it.cond.Resolve(ctx.WithDataPoint(row))
		if err != nil {
			return vtl.DataPoint{}, err
		}
		if !keep.IsNull() && keep.Bool() {
			return row, nil
		}
	}
}

func (it *filteredIter) Close(ctx *vtl.Context) error { return it.inner.Close(ctx) }

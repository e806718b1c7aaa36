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

// Package plan implements the relational-style dataset operators: leaf
// (Resolved), Project, Rename, Filter, Calc, Join, Aggregate, Union, and
// the Difference/Intersection set operators. Every operator accepts a
// child vtl.DatasetExpression plus operator-specific arguments and returns
// a new one carrying a derived structure and a row stream; none mutates its
// input. Project, Rename, Filter and Calc stream rows lazily from their
// child. Join, Aggregate, Union, Difference and Intersection are not lazy:
// ResolveDataset reads every row of their inputs and returns the finished
// result held in memory.
package plan

import "github.com/vtl-lang/vtl"

// datasetNode is embedded by every operator in this package to satisfy
// vtl.ResolvableExpression.Resolve: dataset nodes are driven through
// ResolveDataset, never Resolve, since vtl.Value has no Dataset payload.
type datasetNode struct{}

func (datasetNode) Type() vtl.Type { return vtl.Dataset }

func (datasetNode) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	return vtl.Value{}, vtl.ErrUnsupportedOperation.New("dataset expression resolved as scalar; call ResolveDataset")
}

// Resolved is the leaf dataset expression: it wraps an already-bound
// vtl.Dataset (typically looked up from the Environment) so it can serve as
// a child of another operator.
type Resolved struct {
	datasetNode
	Dataset vtl.Dataset
}

// NewResolved wraps ds as a leaf DatasetExpression.
func NewResolved(ds vtl.Dataset) *Resolved {
	return &Resolved{Dataset: ds}
}

func (r *Resolved) String() string { return "<dataset>" }

func (r *Resolved) Structure() (vtl.DataStructure, error) {
	return r.Dataset.Structure(), nil
}

func (r *Resolved) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	return r.Dataset, nil
}

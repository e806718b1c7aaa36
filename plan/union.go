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

// Union concatenates the rows of two or more datasets sharing an identical
// structure (component names, types, and roles; order-independent).
type Union struct {
	datasetNode
	Operands []vtl.DatasetExpression
}

// NewUnion builds the union operator over two or more operands, all of
// which must share an identical structure.
func NewUnion(operands ...vtl.DatasetExpression) (*Union, error) {
	if len(operands) < 2 {
		return nil, vtl.ErrInvalidArgument.New("union requires at least two operands")
	}
	u := &Union{Operands: operands}
	if _, err := u.Structure(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Union) String() string { return "union(...)" }

func (u *Union) Structure() (vtl.DataStructure, error) {
	return requireIdenticalStructures(u.Operands)
}

func requireIdenticalStructures(operands []vtl.DatasetExpression) (vtl.DataStructure, error) {
	first, err := operands[0].Structure()
	if err != nil {
		return nil, err
	}
	for _, op := range operands[1:] {
		s, err := op.Structure()
		if err != nil {
			return nil, err
		}
		if !first.Equal(s) {
			return nil, vtl.ErrStructureMismatch.New("operands do not share an identical structure")
		}
	}
	return first, nil
}

func (u *Union) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	structure, err := u.Structure()
	if err != nil {
		return nil, err
	}
	var rows []vtl.DataPoint
	for _, op := range u.Operands {
		ds, err := op.ResolveDataset(ctx)
		if err != nil {
			return nil, err
		}
		opRows, err := vtl.Materialize(ctx, ds)
		if err != nil {
			return nil, err
		}
		rows = append(rows, opRows...)
	}
	return &memDataset{structure: structure, rows: rows}, nil
}

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

// setOpKind distinguishes the two tuple-equality set operators: they share
// an identical-structures precondition and a row-equality comparison, and
// differ only in which rows of Left survive.
type setOpKind int

const (
	setDifference setOpKind = iota
	setIntersection
)

// SetOp implements set difference (rows of Left absent from Right) and set
// intersection (rows of Left present in every operand). Row equality uses
// the tuple of all component values under null-is-equal-to-null semantics.
type SetOp struct {
	datasetNode
	Kind     setOpKind
	Left     vtl.DatasetExpression
	Operands []vtl.DatasetExpression
}

// NewDifference builds Left minus right: rows of left with no matching row
// (by full tuple equality) in right.
func NewDifference(left, right vtl.DatasetExpression) (*SetOp, error) {
	return newSetOp(setDifference, left, []vtl.DatasetExpression{right})
}

// NewIntersection builds the rows of left present, by full tuple equality,
// in every one of operands.
func NewIntersection(left vtl.DatasetExpression, operands ...vtl.DatasetExpression) (*SetOp, error) {
	if len(operands) == 0 {
		return nil, vtl.ErrInvalidArgument.New("intersection requires at least one other operand")
	}
	return newSetOp(setIntersection, left, operands)
}

func newSetOp(kind setOpKind, left vtl.DatasetExpression, operands []vtl.DatasetExpression) (*SetOp, error) {
	s := &SetOp{Kind: kind, Left: left, Operands: operands}
	if _, err := s.Structure(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SetOp) String() string {
	if s.Kind == setDifference {
		return "difference(...)"
	}
	return "intersection(...)"
}

func (s *SetOp) Structure() (vtl.DataStructure, error) {
	all := append([]vtl.DatasetExpression{s.Left}, s.Operands...)
	return requireIdenticalStructures(all)
}

func (s *SetOp) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	structure, err := s.Structure()
	if err != nil {
		return nil, err
	}
	leftDS, err := s.Left.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	leftRows, err := vtl.Materialize(ctx, leftDS)
	if err != nil {
		return nil, err
	}

	operandRows := make([][]vtl.DataPoint, len(s.Operands))
	for i, op := range s.Operands {
		ds, err := op.ResolveDataset(ctx)
		if err != nil {
			return nil, err
		}
		rows, err := vtl.Materialize(ctx, ds)
		if err != nil {
			return nil, err
		}
		operandRows[i] = rows
	}

	var out []vtl.DataPoint
	for _, row := range leftRows {
		switch s.Kind {
		case setDifference:
			if !containsRow(operandRows[0], row) {
				out = append(out, row)
			}
		case setIntersection:
			inAll := true
			for _, rows := range operandRows {
				if !containsRow(rows, row) {
					inAll = false
					break
				}
			}
			if inAll {
				out = append(out, row)
			}
		}
	}
	return &memDataset{structure: structure, rows: out}, nil
}

func containsRow(rows []vtl.DataPoint, target vtl.DataPoint) bool {
	for _, r := range rows {
		if r.Equal(target) {
			return true
		}
	}
	return false
}

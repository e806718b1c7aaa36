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

// Package memory provides the reference vtl.Dataset implementation: a
// structure plus a fixed, in-memory row slice. It is the leaf dataset most
// scripts bind into the environment before a plan tree operates on it.
package memory

import "github.com/vtl-lang/vtl"

// Table is a restartable vtl.Dataset backed by an in-memory row slice. Its
// Iterator never mutates the backing slice, so concurrent iterations over
// the same Table are independent, per the Dataset restartability contract.
type Table struct {
	structure vtl.DataStructure
	rows      []vtl.DataPoint
}

// NewTable builds a Table from a structure and a matching set of rows. Each
// row's Structure must equal structure.
func NewTable(structure vtl.DataStructure, rows []vtl.DataPoint) (*Table, error) {
	for _, row := range rows {
		if !row.Structure().Equal(structure) {
			return nil, vtl.ErrStructureMismatch.New("row does not match table structure")
		}
	}
	cp := make([]vtl.DataPoint, len(rows))
	copy(cp, rows)
	return &Table{structure: structure, rows: cp}, nil
}

// Structure returns the table's schema.
func (t *Table) Structure() vtl.DataStructure { return t.structure }

// Iterator opens a fresh RowIter over the table's rows.
func (t *Table) Iterator(ctx *vtl.Context) (vtl.RowIter, error) {
	return vtl.NewSliceIter(t.rows), nil
}

// Len returns the table's row count.
func (t *Table) Len() int { return len(t.rows) }

// Append returns a new Table with row appended, leaving the receiver
// untouched: tables are immutable once built, per the Dataset contract.
func (t *Table) Append(row vtl.DataPoint) (*Table, error) {
	if !row.Structure().Equal(t.structure) {
		return nil, vtl.ErrStructureMismatch.New("row does not match table structure")
	}
	rows := make([]vtl.DataPoint, len(t.rows), len(t.rows)+1)
	copy(rows, t.rows)
	rows = append(rows, row)
	return &Table{structure: t.structure, rows: rows}, nil
}

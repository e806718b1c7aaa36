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

package vtl

import "io"

// DatasetState is one of a Dataset's three observable states. Expression
// nodes carry no runtime state of their own; only Datasets do, and only
// through the row streams their iterators produce.
type DatasetState int

const (
	// StateDefined means the structure is fixed and no iteration has begun.
	StateDefined DatasetState = iota
	// StateIterating means a row stream is in progress.
	StateIterating
	// StateTerminal means an iteration completed (io.EOF was returned).
	StateTerminal
)

// RowIter is a single, restartable-via-a-fresh-call iteration over a
// Dataset's rows. Next returns io.EOF when exhausted. A RowIter is not
// itself restartable: call Dataset.Iterator again for a new pass.
type RowIter interface {
	Next(ctx *Context) (DataPoint, error)
	Close(ctx *Context) error
}

// Dataset is a DataStructure plus a lazy, restartable finite sequence of
// DataPoints. Iteration must be repeatable and side-effect-free: calling
// Iterator twice must yield the same row multiset both times.
type Dataset interface {
	// Structure returns the dataset's schema.
	Structure() DataStructure
	// Iterator opens a fresh RowIter over the dataset's rows. Multiple
	// concurrent iterators over the same Dataset must be independent.
	Iterator(ctx *Context) (RowIter, error)
}

// Materialize drains a Dataset's iterator into an in-memory slice of rows.
// It is a terminal consumer: useful for tests and for operators (like
// aggregate or the set operators) that must see every row before producing
// output.
func Materialize(ctx *Context, ds Dataset) ([]DataPoint, error) {
	it, err := ds.Iterator(ctx)
	if err != nil {
		return nil, err
	}
	defer it.Close(ctx)

	var rows []DataPoint
	for {
		row, err := it.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sliceIter is a RowIter over a pre-materialized, already-ordered slice of
// rows. It underlies the memory package's Dataset and most dataset
// operators that must fully evaluate a child before producing their own
// rows (aggregate, union, set operators).
type sliceIter struct {
	rows []DataPoint
	pos  int
}

// NewSliceIter wraps a slice of rows as a RowIter. The slice is not copied;
// callers must not mutate it while the iterator is in use.
func NewSliceIter(rows []DataPoint) RowIter {
	return &sliceIter{rows: rows}
}

func (it *sliceIter) Next(ctx *Context) (DataPoint, error) {
	if it.pos >= len(it.rows) {
		return DataPoint{}, io.EOF
	}
	row := it.rows[it.pos]
	it.pos++
	return row, nil
}

func (it *sliceIter) Close(ctx *Context) error { return nil }

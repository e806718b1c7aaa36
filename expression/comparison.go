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

package expression

import (
	"fmt"

	"github.com/vtl-lang/vtl"
)

type compareOp int

const (
	cmpLT compareOp = iota
	cmpLE
	cmpGT
	cmpGE
	cmpEQ
	cmpNE
)

func (op compareOp) symbol() string {
	switch op {
	case cmpLT:
		return "<"
	case cmpLE:
		return "<="
	case cmpGT:
		return ">"
	case cmpGE:
		return ">="
	case cmpEQ:
		return "="
	default:
		return "<>"
	}
}

// Comparison implements `< <= > >= = <>`. Total ordering on numerics (with
// null propagation), lexicographic code-point ordering on strings. Any null
// operand yields a null Boolean result.
type Comparison struct {
	Op          compareOp
	Left, Right vtl.ResolvableExpression
}

func newComparison(op compareOp, left, right vtl.ResolvableExpression) (*Comparison, error) {
	lt, rt := left.Type(), right.Type()
	comparable := (isNumeric(lt) && isNumeric(rt)) || (lt == rt)
	if !comparable {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("%s %s %s", lt, op.symbol(), rt))
	}
	return &Comparison{Op: op, Left: left, Right: right}, nil
}

func NewLessThan(l, r vtl.ResolvableExpression) (*Comparison, error)    { return newComparison(cmpLT, l, r) }
func NewLessEqual(l, r vtl.ResolvableExpression) (*Comparison, error)   { return newComparison(cmpLE, l, r) }
func NewGreaterThan(l, r vtl.ResolvableExpression) (*Comparison, error) { return newComparison(cmpGT, l, r) }
func NewGreaterEqual(l, r vtl.ResolvableExpression) (*Comparison, error) {
	return newComparison(cmpGE, l, r)
}
func NewEquals(l, r vtl.ResolvableExpression) (*Comparison, error)    { return newComparison(cmpEQ, l, r) }
func NewNotEquals(l, r vtl.ResolvableExpression) (*Comparison, error) { return newComparison(cmpNE, l, r) }

func (c *Comparison) Type() vtl.Type { return vtl.Boolean }

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left.String(), c.Op.symbol(), c.Right.String())
}

func (c *Comparison) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	lv, err := c.Left.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	rv, err := c.Right.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if lv.IsNull() || rv.IsNull() {
		return vtl.Null(vtl.Boolean), nil
	}

	var cmp int
	if lv.Type() == vtl.String {
		cmp = compareStrings(lv.Str(), rv.Str())
	} else if lv.Type() == vtl.Boolean {
		cmp = compareBools(lv.Bool(), rv.Bool())
	} else {
		cmp = compareNumbers(lv.AsNumber(), rv.AsNumber())
	}

	var result bool
	switch c.Op {
	case cmpLT:
		result = cmp < 0
	case cmpLE:
		result = cmp <= 0
	case cmpGT:
		result = cmp > 0
	case cmpGE:
		result = cmp >= 0
	case cmpEQ:
		result = cmp == 0
	case cmpNE:
		result = cmp != 0
	}
	return vtl.NewBoolean(result), nil
}

func compareStrings(a, b string) int {
	ar, br := []rune(a), []rune(b)
	for i := 0; i < len(ar) && i < len(br); i++ {
		if ar[i] != br[i] {
			if ar[i] < br[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ar) < len(br):
		return -1
	case len(ar) > len(br):
		return 1
	default:
		return 0
	}
}

func compareNumbers(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

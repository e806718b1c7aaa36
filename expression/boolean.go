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

type boolOp int

const (
	boolAnd boolOp = iota
	boolOr
	boolXor
)

// BooleanBinary implements `and`, `or`, `xor` under SQL-style Kleene
// three-valued logic. Both operands are always evaluated: these do not
// short-circuit, since both sides may contribute to null propagation.
type BooleanBinary struct {
	Op          boolOp
	Left, Right vtl.ResolvableExpression
}

func newBooleanBinary(op boolOp, left, right vtl.ResolvableExpression) (*BooleanBinary, error) {
	if left.Type() != vtl.Boolean || right.Type() != vtl.Boolean {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("%s %s", left.Type(), right.Type()))
	}
	return &BooleanBinary{Op: op, Left: left, Right: right}, nil
}

// NewAnd builds the `and` operator.
func NewAnd(left, right vtl.ResolvableExpression) (*BooleanBinary, error) {
	return newBooleanBinary(boolAnd, left, right)
}

// NewOr builds the `or` operator.
func NewOr(left, right vtl.ResolvableExpression) (*BooleanBinary, error) {
	return newBooleanBinary(boolOr, left, right)
}

// NewXor builds the `xor` operator. xor has no null short-circuit: it is
// null whenever either operand is null.
func NewXor(left, right vtl.ResolvableExpression) (*BooleanBinary, error) {
	return newBooleanBinary(boolXor, left, right)
}

func (b *BooleanBinary) Type() vtl.Type { return vtl.Boolean }

func (b *BooleanBinary) String() string {
	sym := map[boolOp]string{boolAnd: "and", boolOr: "or", boolXor: "xor"}[b.Op]
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), sym, b.Right.String())
}

func (b *BooleanBinary) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	lv, err := b.Left.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	rv, err := b.Right.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}

	switch b.Op {
	case boolAnd:
		return kleeneAnd(lv, rv), nil
	case boolOr:
		return kleeneOr(lv, rv), nil
	default:
		if lv.IsNull() || rv.IsNull() {
			return vtl.Null(vtl.Boolean), nil
		}
		return vtl.NewBoolean(lv.Bool() != rv.Bool()), nil
	}
}

// kleeneAnd implements `true and null = null`, `false and null = false`.
func kleeneAnd(l, r vtl.Value) vtl.Value {
	if !l.IsNull() && !l.Bool() {
		return vtl.NewBoolean(false)
	}
	if !r.IsNull() && !r.Bool() {
		return vtl.NewBoolean(false)
	}
	if l.IsNull() || r.IsNull() {
		return vtl.Null(vtl.Boolean)
	}
	return vtl.NewBoolean(true)
}

// kleeneOr implements `true or null = true`, `false or null = null`.
func kleeneOr(l, r vtl.Value) vtl.Value {
	if !l.IsNull() && l.Bool() {
		return vtl.NewBoolean(true)
	}
	if !r.IsNull() && r.Bool() {
		return vtl.NewBoolean(true)
	}
	if l.IsNull() || r.IsNull() {
		return vtl.Null(vtl.Boolean)
	}
	return vtl.NewBoolean(false)
}

// Not implements `not` under Kleene semantics: `not null = null`.
type Not struct {
	Operand vtl.ResolvableExpression
}

// NewNot builds the `not` operator.
func NewNot(operand vtl.ResolvableExpression) (*Not, error) {
	if operand.Type() != vtl.Boolean {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("not %s", operand.Type()))
	}
	return &Not{Operand: operand}, nil
}

func (n *Not) Type() vtl.Type { return vtl.Boolean }
func (n *Not) String() string { return "(not " + n.Operand.String() + ")" }

func (n *Not) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := n.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if v.IsNull() {
		return vtl.Null(vtl.Boolean), nil
	}
	return vtl.NewBoolean(!v.Bool()), nil
}

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
	"math"

	"github.com/vtl-lang/vtl"
)

// arithOp is one of the four binary arithmetic operators.
type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

func (op arithOp) symbol() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	default:
		return "/"
	}
}

// Arithmetic implements the binary `+ - * /` operators. Integer combined
// with Number widens to Number; Integer/Integer stays Integer except `/`,
// which always produces Number. A null operand yields null without error.
type Arithmetic struct {
	Op          arithOp
	Left, Right vtl.ResolvableExpression
	resultType  vtl.Type
}

func newArithmetic(op arithOp, left, right vtl.ResolvableExpression) (*Arithmetic, error) {
	lt, rt := left.Type(), right.Type()
	if !isNumeric(lt) || !isNumeric(rt) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("%s %s %s", lt, op.symbol(), rt))
	}
	result := vtl.WidenNumeric(lt, rt)
	if op == opDiv {
		result = vtl.Number
	}
	return &Arithmetic{Op: op, Left: left, Right: right, resultType: result}, nil
}

// NewAdd builds the `+` operator.
func NewAdd(left, right vtl.ResolvableExpression) (*Arithmetic, error) {
	return newArithmetic(opAdd, left, right)
}

// NewSub builds the `-` operator.
func NewSub(left, right vtl.ResolvableExpression) (*Arithmetic, error) {
	return newArithmetic(opSub, left, right)
}

// NewMul builds the `*` operator.
func NewMul(left, right vtl.ResolvableExpression) (*Arithmetic, error) {
	return newArithmetic(opMul, left, right)
}

// NewDiv builds the `/` operator. Division by zero yields null rather than
// an error.
func NewDiv(left, right vtl.ResolvableExpression) (*Arithmetic, error) {
	return newArithmetic(opDiv, left, right)
}

func (a *Arithmetic) Type() vtl.Type { return a.resultType }

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left.String(), a.Op.symbol(), a.Right.String())
}

func (a *Arithmetic) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	lv, err := a.Left.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	rv, err := a.Right.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if lv.IsNull() || rv.IsNull() {
		return vtl.Null(a.resultType), nil
	}

	if a.Op == opDiv {
		divisor := rv.AsNumber()
		if divisor == 0 {
			return vtl.Null(vtl.Number), nil
		}
		return vtl.NewNumber(lv.AsNumber() / divisor), nil
	}

	if a.resultType == vtl.Number {
		return vtl.NewNumber(applyNumeric(a.Op, lv.AsNumber(), rv.AsNumber())), nil
	}
	return applyInteger(a.Op, lv.Int(), rv.Int())
}

func applyNumeric(op arithOp, l, r float64) float64 {
	switch op {
	case opAdd:
		return l + r
	case opSub:
		return l - r
	case opMul:
		return l * r
	default:
		return l / r
	}
}

func applyInteger(op arithOp, l, r int64) (vtl.Value, error) {
	switch vtl.OverflowPolicyInEffect() {
	case vtl.OverflowWrap:
		return vtl.NewInteger(wrapInteger(op, l, r)), nil
	case vtl.OverflowFail:
		v, overflowed := checkedInteger(op, l, r)
		if overflowed {
			return vtl.Value{}, vtl.ErrInvalidArgument.New(fmt.Sprintf("integer overflow: %d %s %d", l, op.symbol(), r))
		}
		return vtl.NewInteger(v), nil
	default: // OverflowSaturate
		return vtl.NewInteger(saturatingInteger(op, l, r)), nil
	}
}

func wrapInteger(op arithOp, l, r int64) int64 {
	switch op {
	case opAdd:
		return l + r
	case opSub:
		return l - r
	default:
		return l * r
	}
}

// checkedInteger reports the wrapped result and whether the true
// mathematical result overflowed int64.
func checkedInteger(op arithOp, l, r int64) (int64, bool) {
	result := wrapInteger(op, l, r)
	switch op {
	case opAdd:
		return result, (r > 0 && result < l) || (r < 0 && result > l)
	case opSub:
		return result, (r < 0 && result < l) || (r > 0 && result > l)
	default:
		if l == 0 || r == 0 {
			return 0, false
		}
		if (l == math.MinInt64 && r == -1) || (r == math.MinInt64 && l == -1) {
			return result, true
		}
		return result, result/r != l
	}
}

// saturatingInteger returns the op's result clamped to math.MaxInt64 or
// math.MinInt64 on overflow; the clamp direction follows the true
// mathematical result's sign.
func saturatingInteger(op arithOp, l, r int64) int64 {
	result, overflowed := checkedInteger(op, l, r)
	if !overflowed {
		return result
	}
	var positive bool
	switch op {
	case opAdd:
		positive = l > 0
	case opSub:
		positive = r < 0
	default:
		positive = (l < 0) == (r < 0)
	}
	if positive {
		return math.MaxInt64
	}
	return math.MinInt64
}

// Negate implements unary `-`.
type Negate struct {
	Operand vtl.ResolvableExpression
}

// NewNegate builds the unary `-` operator.
func NewNegate(operand vtl.ResolvableExpression) (*Negate, error) {
	if !isNumeric(operand.Type()) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("unary - %s", operand.Type()))
	}
	return &Negate{Operand: operand}, nil
}

func (n *Negate) Type() vtl.Type { return n.Operand.Type() }
func (n *Negate) String() string { return "(-" + n.Operand.String() + ")" }

func (n *Negate) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := n.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if v.IsNull() {
		return v, nil
	}
	if v.Type() == vtl.Integer {
		return vtl.NewInteger(-v.Int()), nil
	}
	return vtl.NewNumber(-v.Num()), nil
}

// UnaryPlus implements unary `+`, a no-op preserving the operand's value.
type UnaryPlus struct {
	Operand vtl.ResolvableExpression
}

// NewUnaryPlus builds the unary `+` operator.
func NewUnaryPlus(operand vtl.ResolvableExpression) (*UnaryPlus, error) {
	if !isNumeric(operand.Type()) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("unary + %s", operand.Type()))
	}
	return &UnaryPlus{Operand: operand}, nil
}

func (u *UnaryPlus) Type() vtl.Type                        { return u.Operand.Type() }
func (u *UnaryPlus) String() string                        { return "(+" + u.Operand.String() + ")" }
func (u *UnaryPlus) Resolve(ctx *vtl.Context) (vtl.Value, error) { return u.Operand.Resolve(ctx) }

func isNumeric(t vtl.Type) bool {
	return t == vtl.Integer || t == vtl.Number
}

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

// unaryNumericKind is one of the one-argument numeric functions that
// preserve their operand's Integer/Number type (abs, ceil, floor) or always
// produce Number (sqrt, ln, exp).
type unaryNumericKind int

const (
	fnAbs unaryNumericKind = iota
	fnCeil
	fnFloor
	fnSqrt
	fnLn
	fnExp
)

var unaryNumericNames = map[unaryNumericKind]string{
	fnAbs: "abs", fnCeil: "ceil", fnFloor: "floor",
	fnSqrt: "sqrt", fnLn: "ln", fnExp: "exp",
}

// preservesType reports whether this function keeps Integer input Integer,
// as opposed to always widening to Number.
func (k unaryNumericKind) preservesType() bool {
	return k == fnAbs || k == fnCeil || k == fnFloor
}

// UnaryNumeric implements the single-argument numeric functions `abs`,
// `ceil`, `floor`, `sqrt`, `ln`, `exp`.
type UnaryNumeric struct {
	Kind       unaryNumericKind
	Operand    vtl.ResolvableExpression
	resultType vtl.Type
}

func newUnaryNumeric(kind unaryNumericKind, operand vtl.ResolvableExpression) (*UnaryNumeric, error) {
	if !isNumeric(operand.Type()) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("%s(%s)", unaryNumericNames[kind], operand.Type()))
	}
	result := vtl.Number
	if kind.preservesType() {
		result = operand.Type()
	}
	return &UnaryNumeric{Kind: kind, Operand: operand, resultType: result}, nil
}

func NewAbs(operand vtl.ResolvableExpression) (*UnaryNumeric, error)   { return newUnaryNumeric(fnAbs, operand) }
func NewCeil(operand vtl.ResolvableExpression) (*UnaryNumeric, error)  { return newUnaryNumeric(fnCeil, operand) }
func NewFloor(operand vtl.ResolvableExpression) (*UnaryNumeric, error) { return newUnaryNumeric(fnFloor, operand) }
func NewSqrt(operand vtl.ResolvableExpression) (*UnaryNumeric, error)  { return newUnaryNumeric(fnSqrt, operand) }
func NewLn(operand vtl.ResolvableExpression) (*UnaryNumeric, error)    { return newUnaryNumeric(fnLn, operand) }
func NewExp(operand vtl.ResolvableExpression) (*UnaryNumeric, error)   { return newUnaryNumeric(fnExp, operand) }

func (u *UnaryNumeric) Type() vtl.Type { return u.resultType }
func (u *UnaryNumeric) String() string {
	return fmt.Sprintf("%s(%s)", unaryNumericNames[u.Kind], u.Operand.String())
}

func (u *UnaryNumeric) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := u.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if v.IsNull() {
		return vtl.Null(u.resultType), nil
	}

	if u.Kind.preservesType() && v.Type() == vtl.Integer {
		i := v.Int()
		switch u.Kind {
		case fnAbs:
			if i < 0 {
				i = -i
			}
		}
		return vtl.NewInteger(i), nil
	}

	n := v.AsNumber()
	switch u.Kind {
	case fnAbs:
		return vtl.NewNumber(math.Abs(n)), nil
	case fnCeil:
		return vtl.NewNumber(math.Ceil(n)), nil
	case fnFloor:
		return vtl.NewNumber(math.Floor(n)), nil
	case fnSqrt:
		if n < 0 {
			return vtl.Null(vtl.Number), nil
		}
		return vtl.NewNumber(math.Sqrt(n)), nil
	case fnLn:
		if n < 0 {
			return vtl.Null(vtl.Number), nil
		}
		return vtl.NewNumber(math.Log(n)), nil
	default: // fnExp
		return vtl.NewNumber(math.Exp(n)), nil
	}
}

// Round implements `round(x, n)`: round x to n decimal places. Always
// produces Number.
type Round struct {
	X, N vtl.ResolvableExpression
}

// NewRound builds the `round` operator.
func NewRound(x, n vtl.ResolvableExpression) (*Round, error) {
	if !isNumeric(x.Type()) || n.Type() != vtl.Integer {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("round(%s, %s)", x.Type(), n.Type()))
	}
	return &Round{X: x, N: n}, nil
}

func (r *Round) Type() vtl.Type { return vtl.Number }
func (r *Round) String() string { return fmt.Sprintf("round(%s, %s)", r.X.String(), r.N.String()) }

func (r *Round) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	xv, err := r.X.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	nv, err := r.N.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if xv.IsNull() || nv.IsNull() {
		return vtl.Null(vtl.Number), nil
	}
	factor := math.Pow(10, float64(nv.Int()))
	return vtl.NewNumber(math.Round(xv.AsNumber()*factor) / factor), nil
}

// Trunc implements `trunc(x, n)`: truncate x to n decimal places towards
// zero. Always produces Number.
type Trunc struct {
	X, N vtl.ResolvableExpression
}

// NewTrunc builds the `trunc` operator.
func NewTrunc(x, n vtl.ResolvableExpression) (*Trunc, error) {
	if !isNumeric(x.Type()) || n.Type() != vtl.Integer {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("trunc(%s, %s)", x.Type(), n.Type()))
	}
	return &Trunc{X: x, N: n}, nil
}

func (t *Trunc) Type() vtl.Type { return vtl.Number }
func (t *Trunc) String() string { return fmt.Sprintf("trunc(%s, %s)", t.X.String(), t.N.String()) }

func (t *Trunc) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	xv, err := t.X.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	nv, err := t.N.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if xv.IsNull() || nv.IsNull() {
		return vtl.Null(vtl.Number), nil
	}
	factor := math.Pow(10, float64(nv.Int()))
	return vtl.NewNumber(math.Trunc(xv.AsNumber()*factor) / factor), nil
}

// Log implements `log(x, base)`. log(x, 1) yields null, as does log of a
// non-positive x.
type Log struct {
	X, Base vtl.ResolvableExpression
}

// NewLog builds the `log` operator.
func NewLog(x, base vtl.ResolvableExpression) (*Log, error) {
	if !isNumeric(x.Type()) || !isNumeric(base.Type()) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("log(%s, %s)", x.Type(), base.Type()))
	}
	return &Log{X: x, Base: base}, nil
}

func (l *Log) Type() vtl.Type { return vtl.Number }
func (l *Log) String() string { return fmt.Sprintf("log(%s, %s)", l.X.String(), l.Base.String()) }

func (l *Log) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	xv, err := l.X.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	bv, err := l.Base.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if xv.IsNull() || bv.IsNull() {
		return vtl.Null(vtl.Number), nil
	}
	x, base := xv.AsNumber(), bv.AsNumber()
	if x <= 0 || base <= 0 || base == 1 {
		return vtl.Null(vtl.Number), nil
	}
	return vtl.NewNumber(math.Log(x) / math.Log(base)), nil
}

// Power implements `power(x, y)`.
type Power struct {
	X, Y vtl.ResolvableExpression
}

// NewPower builds the `power` operator.
func NewPower(x, y vtl.ResolvableExpression) (*Power, error) {
	if !isNumeric(x.Type()) || !isNumeric(y.Type()) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("power(%s, %s)", x.Type(), y.Type()))
	}
	return &Power{X: x, Y: y}, nil
}

func (p *Power) Type() vtl.Type { return vtl.Number }
func (p *Power) String() string { return fmt.Sprintf("power(%s, %s)", p.X.String(), p.Y.String()) }

func (p *Power) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	xv, err := p.X.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	yv, err := p.Y.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if xv.IsNull() || yv.IsNull() {
		return vtl.Null(vtl.Number), nil
	}
	return vtl.NewNumber(math.Pow(xv.AsNumber(), yv.AsNumber())), nil
}

// Mod implements `mod(x, y)`: modulo. mod(x, 0) yields null. Preserves
// Integer when both operands are Integer.
type Mod struct {
	X, Y       vtl.ResolvableExpression
	resultType vtl.Type
}

// NewMod builds the `mod` operator.
func NewMod(x, y vtl.ResolvableExpression) (*Mod, error) {
	if !isNumeric(x.Type()) || !isNumeric(y.Type()) {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("mod(%s, %s)", x.Type(), y.Type()))
	}
	return &Mod{X: x, Y: y, resultType: vtl.WidenNumeric(x.Type(), y.Type())}, nil
}

func (m *Mod) Type() vtl.Type { return m.resultType }
func (m *Mod) String() string { return fmt.Sprintf("mod(%s, %s)", m.X.String(), m.Y.String()) }

func (m *Mod) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	xv, err := m.X.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	yv, err := m.Y.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if xv.IsNull() || yv.IsNull() {
		return vtl.Null(m.resultType), nil
	}
	if m.resultType == vtl.Integer {
		if yv.Int() == 0 {
			return vtl.Null(vtl.Integer), nil
		}
		return vtl.NewInteger(xv.Int() % yv.Int()), nil
	}
	y := yv.AsNumber()
	if y == 0 {
		return vtl.Null(vtl.Number), nil
	}
	return vtl.NewNumber(math.Mod(xv.AsNumber(), y)), nil
}

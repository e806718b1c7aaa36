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
	"strings"

	"github.com/vtl-lang/vtl"
)

// trimKind selects which of trim/ltrim/rtrim a Trim node implements.
type trimKind int

const (
	trimBoth trimKind = iota
	trimLeft
	trimRight
)

const asciiWhitespace = " \t\n\r"

// Trim implements `trim`, `ltrim`, `rtrim`: removal of leading/trailing
// ASCII whitespace (space, tab, newline, carriage return).
type Trim struct {
	Kind    trimKind
	Operand vtl.ResolvableExpression
}

func newTrim(kind trimKind, operand vtl.ResolvableExpression) (*Trim, error) {
	if operand.Type() != vtl.String {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("trim(%s)", operand.Type()))
	}
	return &Trim{Kind: kind, Operand: operand}, nil
}

func NewTrim(operand vtl.ResolvableExpression) (*Trim, error)  { return newTrim(trimBoth, operand) }
func NewLTrim(operand vtl.ResolvableExpression) (*Trim, error) { return newTrim(trimLeft, operand) }
func NewRTrim(operand vtl.ResolvableExpression) (*Trim, error) { return newTrim(trimRight, operand) }

func (t *Trim) Type() vtl.Type { return vtl.String }

func (t *Trim) String() string {
	name := map[trimKind]string{trimBoth: "trim", trimLeft: "ltrim", trimRight: "rtrim"}[t.Kind]
	return fmt.Sprintf("%s(%s)", name, t.Operand.String())
}

func (t *Trim) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := t.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if v.IsNull() {
		return vtl.Null(vtl.String), nil
	}
	switch t.Kind {
	case trimLeft:
		return vtl.NewString(strings.TrimLeft(v.Str(), asciiWhitespace)), nil
	case trimRight:
		return vtl.NewString(strings.TrimRight(v.Str(), asciiWhitespace)), nil
	default:
		return vtl.NewString(strings.Trim(v.Str(), asciiWhitespace)), nil
	}
}

// caseKind selects which of upper/lower a Case node implements.
type caseKind int

const (
	caseUpper caseKind = iota
	caseLower
)

// Case implements `upper`/`lower`: Unicode code-point case folding.
type Case struct {
	Kind    caseKind
	Operand vtl.ResolvableExpression
}

func newCase(kind caseKind, operand vtl.ResolvableExpression) (*Case, error) {
	if operand.Type() != vtl.String {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("upper/lower(%s)", operand.Type()))
	}
	return &Case{Kind: kind, Operand: operand}, nil
}

func NewUpper(operand vtl.ResolvableExpression) (*Case, error) { return newCase(caseUpper, operand) }
func NewLower(operand vtl.ResolvableExpression) (*Case, error) { return newCase(caseLower, operand) }

func (c *Case) Type() vtl.Type { return vtl.String }
func (c *Case) String() string {
	name := map[caseKind]string{caseUpper: "upper", caseLower: "lower"}[c.Kind]
	return fmt.Sprintf("%s(%s)", name, c.Operand.String())
}

func (c *Case) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := c.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if v.IsNull() {
		return vtl.Null(vtl.String), nil
	}
	if c.Kind == caseUpper {
		return vtl.NewString(strings.ToUpper(v.Str())), nil
	}
	return vtl.NewString(strings.ToLower(v.Str())), nil
}

// Length implements `length`: Integer count of Unicode code points, not
// bytes.
type Length struct {
	Operand vtl.ResolvableExpression
}

// NewLength builds the `length` operator.
func NewLength(operand vtl.ResolvableExpression) (*Length, error) {
	if operand.Type() != vtl.String {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("length(%s)", operand.Type()))
	}
	return &Length{Operand: operand}, nil
}

func (l *Length) Type() vtl.Type { return vtl.Integer }
func (l *Length) String() string { return "length(" + l.Operand.String() + ")" }

func (l *Length) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := l.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if v.IsNull() {
		return vtl.Null(vtl.Integer), nil
	}
	return vtl.NewInteger(int64(codePointCount(v.Str()))), nil
}

func codePointCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Substr implements `substr(s)`, `substr(s, start)`,
// `substr(s, start, length)`. start is 0-based inclusive; length counts
// code points from start; missing start defaults to 0, missing length
// means "to end". Out-of-range arguments clamp to [0, len(s)]. More than
// three positional arguments is UnsupportedOperation.
type Substr struct {
	Str         vtl.ResolvableExpression
	Start, Len  vtl.ResolvableExpression // nil when omitted
	literalForm string
}

// NewSubstr builds the `substr` operator from its positional arguments
// (not counting the string itself). Passing more than two (start, length)
// fails with UnsupportedOperation bearing the call's literal form.
func NewSubstr(str vtl.ResolvableExpression, args ...vtl.ResolvableExpression) (*Substr, error) {
	if str.Type() != vtl.String {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("substr(%s, ...)", str.Type()))
	}
	for _, a := range args {
		if a.Type() != vtl.Integer {
			return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("substr(..., %s)", a.Type()))
		}
	}
	s := &Substr{Str: str}
	s.literalForm = substrLiteralForm(str, args)
	if len(args) > 2 {
		return nil, vtl.ErrUnsupportedOperation.New(
			fmt.Sprintf("too many args (%d) for: %s", len(args), s.literalForm))
	}
	if len(args) >= 1 {
		s.Start = args[0]
	}
	if len(args) >= 2 {
		s.Len = args[1]
	}
	return s, nil
}

func substrLiteralForm(str vtl.ResolvableExpression, args []vtl.ResolvableExpression) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, str.String())
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return "substr(" + strings.Join(parts, ",") + ")"
}

func (s *Substr) Type() vtl.Type { return vtl.String }
func (s *Substr) String() string { return s.literalForm }

func (s *Substr) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	sv, err := s.Str.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if sv.IsNull() {
		return vtl.Null(vtl.String), nil
	}
	runes := []rune(sv.Str())

	start := 0
	if s.Start != nil {
		startV, err := s.Start.Resolve(ctx)
		if err != nil {
			return vtl.Value{}, err
		}
		if startV.IsNull() {
			return vtl.Null(vtl.String), nil
		}
		start = int(startV.Int())
	}
	start = clamp(start, 0, len(runes))

	end := len(runes)
	if s.Len != nil {
		lenV, err := s.Len.Resolve(ctx)
		if err != nil {
			return vtl.Value{}, err
		}
		if lenV.IsNull() {
			return vtl.Null(vtl.String), nil
		}
		n := int(lenV.Int())
		if n < 0 {
			n = 0
		}
		end = start + n
	}
	end = clamp(end, start, len(runes))

	return vtl.NewString(string(runes[start:end])), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

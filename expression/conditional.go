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

// If implements `if cond then a else b`. Both branches must share a common
// widened type. A null condition yields a null result of that type.
type If struct {
	Cond       vtl.ResolvableExpression
	Then, Else vtl.ResolvableExpression
	resultType vtl.Type
}

// NewIf builds the conditional operator, validating cond is Boolean and
// that the branches share (or widen to) a common type.
func NewIf(cond, then, els vtl.ResolvableExpression) (*If, error) {
	if cond.Type() != vtl.Boolean {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("if %s then ...", cond.Type()))
	}
	result, ok := widenBranches(then.Type(), els.Type())
	if !ok {
		return nil, vtl.ErrUnsupportedType.New(fmt.Sprintf("if ... then %s else %s", then.Type(), els.Type()))
	}
	return &If{Cond: cond, Then: then, Else: els, resultType: result}, nil
}

func widenBranches(a, b vtl.Type) (vtl.Type, bool) {
	if a == b {
		return a, true
	}
	if isNumeric(a) && isNumeric(b) {
		return vtl.WidenNumeric(a, b), true
	}
	return 0, false
}

func (i *If) Type() vtl.Type { return i.resultType }

func (i *If) String() string {
	return fmt.Sprintf("if %s then %s else %s", i.Cond.String(), i.Then.String(), i.Else.String())
}

func (i *If) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	cv, err := i.Cond.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	if cv.IsNull() {
		return vtl.Null(i.resultType), nil
	}
	if cv.Bool() {
		return i.Then.Resolve(ctx)
	}
	return i.Else.Resolve(ctx)
}

// IsNull implements the dedicated null test: Boolean, never null itself.
type IsNull struct {
	Operand vtl.ResolvableExpression
}

// NewIsNull builds the `isnull(x)` operator. It accepts any scalar type.
func NewIsNull(operand vtl.ResolvableExpression) *IsNull {
	return &IsNull{Operand: operand}
}

func (n *IsNull) Type() vtl.Type { return vtl.Boolean }
func (n *IsNull) String() string { return "isnull(" + n.Operand.String() + ")" }

func (n *IsNull) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	v, err := n.Operand.Resolve(ctx)
	if err != nil {
		return vtl.Value{}, err
	}
	return vtl.NewBoolean(v.IsNull()), nil
}

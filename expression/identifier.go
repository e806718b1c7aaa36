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

import "github.com/vtl-lang/vtl"

// Identifier resolves a top-level scalar binding by name against the
// Context's Environment. It is the leaf expression a parser emits for a
// bare reference to a previously-assigned scalar.
type Identifier struct {
	Name       string
	resultType vtl.Type
}

// NewIdentifier builds an Identifier expression. The declared type must be
// known at construction time (the parser resolves it from the
// environment's current bindings before building the tree).
func NewIdentifier(name string, declaredType vtl.Type) *Identifier {
	return &Identifier{Name: name, resultType: declaredType}
}

func (i *Identifier) Type() vtl.Type { return i.resultType }
func (i *Identifier) String() string { return i.Name }

func (i *Identifier) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	env := ctx.Environment()
	if env == nil {
		return vtl.Value{}, vtl.ErrUndefinedReference.New(i.Name)
	}
	b, err := env.Lookup(i.Name)
	if err != nil {
		return vtl.Value{}, err
	}
	if b.IsData {
		return vtl.Value{}, vtl.ErrUnsupportedType.New("identifier " + i.Name + " is bound to a dataset, not a scalar")
	}
	return b.Scalar, nil
}

// GetField resolves a component's value from the Context's bound DataPoint,
// by name. It is the leaf expression row-wise dataset operators (filter,
// calc, join) compile component references into.
type GetField struct {
	Name       string
	resultType vtl.Type
}

// NewGetField builds a GetField expression.
func NewGetField(name string, declaredType vtl.Type) *GetField {
	return &GetField{Name: name, resultType: declaredType}
}

func (g *GetField) Type() vtl.Type { return g.resultType }
func (g *GetField) String() string { return g.Name }

func (g *GetField) Resolve(ctx *vtl.Context) (vtl.Value, error) {
	dp, ok := ctx.DataPoint()
	if !ok {
		return vtl.Value{}, vtl.ErrInvalidArgument.New("GetField(" + g.Name + ") resolved outside of a row context")
	}
	v, ok := dp.Get(g.Name)
	if !ok {
		return vtl.Value{}, vtl.ErrUndefinedReference.New(g.Name)
	}
	return v, nil
}

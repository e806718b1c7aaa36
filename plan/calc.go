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

// CalcDef is one new-or-replaced component in a Calc operator: a name, the
// per-row expression that computes it, and its role. Callers default Role to
// vtl.RoleMeasure when the source script doesn't name one explicitly.
type CalcDef struct {
	Name string
	Expr vtl.ResolvableExpression
	Role vtl.Role
}

// Calc defines new components, or replaces existing ones in place when a
// def's name collides with a component already in the child structure and
// the role matches. A role mismatch on a colliding name is rejected.
type Calc struct {
	datasetNode
	Child vtl.DatasetExpression
	Defs  []CalcDef
}

// NewCalc builds the calc operator over child with defs applied in order.
func NewCalc(child vtl.DatasetExpression, defs []CalcDef) *Calc {
	return &Calc{Child: child, Defs: defs}
}

func (c *Calc) String() string { return "calc(...)" }

// calcPlan is the derived structure plus, for every output position, either
// the child's positional index to copy forward or the CalcDef to evaluate.
type calcPlan struct {
	structure vtl.DataStructure
	fromChild []int // -1 means "compute via defs[position]"
	defs      []CalcDef
}

func (c *Calc) plan(child vtl.DataStructure) (*calcPlan, error) {
	components := make([]vtl.Component, len(child))
	copy(components, child)
	fromChild := make([]int, len(child))
	for i := range fromChild {
		fromChild[i] = i
	}
	defAt := make(map[int]CalcDef)

	byName := make(map[string]int, len(components))
	for i, comp := range components {
		byName[comp.Name] = i
	}

	for _, def := range c.Defs {
		newComp := vtl.NewComponent(def.Name, def.Expr.Type(), def.Role)
		if i, ok := byName[def.Name]; ok {
			if components[i].Role != def.Role {
				return nil, vtl.ErrInvalidArgument.New("calc component role mismatch: " + def.Name)
			}
			components[i] = newComp
			fromChild[i] = -1
			defAt[i] = def
			continue
		}
		components = append(components, newComp)
		fromChild = append(fromChild, -1)
		defAt[len(components)-1] = def
		byName[def.Name] = len(components) - 1
	}

	structure, err := vtl.NewDataStructure(components...)
	if err != nil {
		return nil, err
	}
	defs := make([]CalcDef, len(components))
	for i, d := range defAt {
		defs[i] = d
	}
	return &calcPlan{structure: structure, fromChild: fromChild, defs: defs}, nil
}

func (c *Calc) Structure() (vtl.DataStructure, error) {
	childStruct, err := c.Child.Structure()
	if err != nil {
		return nil, err
	}
	p, err := c.plan(childStruct)
	if err != nil {
		return nil, err
	}
	return p.structure, nil
}

func (c *Calc) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	childDS, err := c.Child.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	p, err := c.plan(childDS.Structure())
	if err != nil {
		return nil, err
	}
	return &calcDataset{plan: p, child: childDS}, nil
}

type calcDataset struct {
	plan  *calcPlan
	child vtl.Dataset
}

func (d *calcDataset) Structure() vtl.DataStructure { return d.plan.structure }

func (d *calcDataset) Iterator(ctx *vtl.Context) (vtl.RowIter, error) {
	it, err := d.child.Iterator(ctx)
	if err != nil {
		return nil, err
	}
	return &calcIter{inner: it, plan: d.plan}, nil
}

type calcIter struct {
	inner vtl.RowIter
	plan  *calcPlan
}

func (it *calcIter) Next(ctx *vtl.Context) (vtl.DataPoint, error) {
	row, err := it.inner.Next(ctx)
	if err != nil {
		return vtl.DataPoint{}, err
	}
	rowCtx := ctx.WithDataPoint(row)
	values := make([]vtl.Value, len(it.plan.fromChild))
	for i, from := range it.plan.fromChild {
		if from >= 0 {
			values[i] = row.At(from)
			continue
		}
		v, err := it.plan.defs[i].Expr.Resolve(rowCtx)
		if err != nil {
			return vtl.DataPoint{}, err
		}
		values[i] = v
	}
	return vtl.NewDataPoint(it.plan.structure, values)
}

func (it *calcIter) Close(ctx *vtl.Context) error { return it.inner.Close(ctx) }

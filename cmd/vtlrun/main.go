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

// Command vtlrun builds a small expression tree by hand and runs it
// through an Engine, standing in for the parser this core does not
// implement. It prints the aggregated result dataset to stdout.
package main

import (
	"context"
	"fmt"

	"github.com/vtl-lang/vtl"
	"github.com/vtl-lang/vtl/expression"
	"github.com/vtl-lang/vtl/expression/aggregation"
	"github.com/vtl-lang/vtl/memory"
	"github.com/vtl-lang/vtl/plan"
)

func main() {
	structure, err := vtl.NewDataStructure(
		vtl.NewComponent("country", vtl.String, vtl.RoleIdentifier),
		vtl.NewComponent("year", vtl.Integer, vtl.RoleIdentifier),
		vtl.NewComponent("population", vtl.Number, vtl.RoleMeasure),
	)
	if err != nil {
		panic(err)
	}

	rows := []vtl.DataPoint{
		mustRow(structure, vtl.NewString("BE"), vtl.NewInteger(2019), vtl.NewNumber(11.5)),
		mustRow(structure, vtl.NewString("BE"), vtl.NewInteger(2020), vtl.NewNumber(11.6)),
		mustRow(structure, vtl.NewString("FR"), vtl.NewInteger(2019), vtl.NewNumber(67.0)),
		mustRow(structure, vtl.NewString("FR"), vtl.NewInteger(2020), vtl.NewNumber(67.4)),
	}

	table, err := memory.NewTable(structure, rows)
	if err != nil {
		panic(err)
	}

	leaf := plan.NewResolved(table)
	sum, err := aggregation.NewSum(expression.NewGetField("population", vtl.Number))
	if err != nil {
		panic(err)
	}
	aggregate, err := plan.NewAggregate(leaf, []string{"country"}, []plan.AggregateDef{
		{Name: "total_population", Reducer: sum},
	})
	if err != nil {
		panic(err)
	}

	engine := vtl.NewDefault()
	binding, err := engine.Execute(context.Background(), vtl.Statement{
		Name:       "by_country",
		Expression: aggregate,
	})
	if err != nil {
		panic(err)
	}

	result, err := vtl.Materialize(vtl.NewEmptyContext(), binding.Dataset)
	if err != nil {
		panic(err)
	}
	for _, row := range result {
		fmt.Println(row.Values())
	}
}

func mustRow(structure vtl.DataStructure, values ...vtl.Value) vtl.DataPoint {
	dp, err := vtl.NewDataPoint(structure, values)
	if err != nil {
		panic(err)
	}
	return dp
}

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

package aggregation

import "github.com/vtl-lang/vtl"

type countBuffer struct {
	n int64
}

// Count is the `count` reducer: it takes no expression, counts every data
// point including those carrying nulls, and returns Integer.
type Count struct{}

// NewCount builds the `count` reducer.
func NewCount() *Count { return &Count{} }

func (c *Count) Name() string        { return "count" }
func (c *Count) Type() vtl.Type      { return vtl.Integer }
func (c *Count) NewBuffer() Buffer   { return &countBuffer{} }

func (c *Count) Update(ctx *vtl.Context, buf Buffer, row vtl.DataPoint) error {
	buf.(*countBuffer).n++
	return nil
}

func (c *Count) Merge(ctx *vtl.Context, dst, src Buffer) error {
	dst.(*countBuffer).n += src.(*countBuffer).n
	return nil
}

func (c *Count) Eval(ctx *vtl.Context, buf Buffer) (vtl.Value, error) {
	return vtl.NewInteger(buf.(*countBuffer).n), nil
}

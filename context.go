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

package vtl

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context is the resolution context passed to ResolvableExpression.Resolve.
// It is either empty (constants, identifier lookups against the
// environment) or carries the current DataPoint for row-wise operators.
//
// Context wraps a context.Context, exposed through Context(). No operator or
// iterator in this module checks it, so cancelling it does not stop an
// iteration in progress; cancellation is not part of the core evaluator's
// own contract.
type Context struct {
	ctx    context.Context
	env    *Environment
	point  DataPoint
	hasRow bool
	logger *logrus.Entry
	span   opentracing.Span
}

// NewContext builds an empty top-level Context bound to env, used to
// resolve constants, identifier lookups, and scalar statements.
func NewContext(ctx context.Context, env *Environment) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{ctx: ctx, env: env, logger: logrus.NewEntry(logrus.StandardLogger())}
}

// NewEmptyContext is a convenience constructor for tests and small scripts
// that resolve constant expressions against a fresh, empty Environment with
// no row bound.
func NewEmptyContext() *Context {
	return NewContext(context.Background(), NewEnvironment())
}

// Environment returns the context's bound identifier store.
func (c *Context) Environment() *Environment { return c.env }

// WithDataPoint returns a derived Context carrying the given row, leaving
// the receiver untouched so the same parent Context can spawn one child per
// row of a dataset iteration.
func (c *Context) WithDataPoint(dp DataPoint) *Context {
	child := *c
	child.point = dp
	child.hasRow = true
	return &child
}

// DataPoint returns the context's bound row and whether one is present.
func (c *Context) DataPoint() (DataPoint, bool) {
	return c.point, c.hasRow
}

// Context returns the underlying context.Context, e.g. to check
// cancellation from within a long iteration.
func (c *Context) Context() context.Context { return c.ctx }

// Logger returns the structured logger entry for this context.
func (c *Context) Logger() *logrus.Entry {
	if c.logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return c.logger
}

// WithLogger returns a derived Context using the given logger fields.
func (c *Context) WithLogger(logger *logrus.Entry) *Context {
	child := *c
	child.logger = logger
	return &child
}

// StartSpan opens an opentracing span rooted at this context's span (if
// any) and returns a derived Context carrying it, along with a finish
// function the caller must invoke when the operation completes.
func (c *Context) StartSpan(operation string) (*Context, func()) {
	var span opentracing.Span
	if c.span != nil {
		span = opentracing.StartSpan(operation, opentracing.ChildOf(c.span.Context()))
	} else {
		span = opentracing.StartSpan(operation)
	}
	child := *c
	child.span = span
	return &child, span.Finish
}

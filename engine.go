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
	"sync"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Statement binds an identifier to the result of a ResolvableExpression.
// The parser builds these; the Engine executes them in submission order.
type Statement struct {
	Name       string
	Expression ResolvableExpression
}

// Engine evaluates VTL statements against an Environment. It owns no state
// of its own beyond the Environment and configuration: it does not persist
// across executions and performs no I/O.
type Engine struct {
	mu     sync.Mutex
	Env    *Environment
	Config *Config
	log    *logrus.Entry
}

// New creates an Engine with custom configuration bound to env. Should
// cfg be nil, DefaultConfig is used.
func New(env *Environment, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.configureLogger()
	if env == nil {
		env = NewEnvironment()
	}
	return &Engine{
		Env:    env,
		Config: cfg,
		log:    logrus.WithField("component", "vtl.Engine"),
	}
}

// NewDefault creates an Engine with a fresh Environment and default
// configuration.
func NewDefault() *Engine {
	return New(NewEnvironment(), nil)
}

// Execute runs a single Statement to completion: it resolves the right-hand
// side against an empty context (or, for dataset-producing expressions,
// constructs the lazy derived Dataset), stores the result in the
// Environment under stmt.Name, and returns it.
//
// Errors abort the statement: prior bindings in the Environment are left
// intact.
func (e *Engine) Execute(goCtx context.Context, stmt Statement) (Binding, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	execID := uuid.NewV4().String()
	log := e.log.WithFields(logrus.Fields{"statement": stmt.Name, "exec_id": execID})
	log.Trace("executing statement")

	ctx := NewContext(goCtx, e.Env).WithLogger(log)
	ctx, finish := ctx.StartSpan("vtl.Execute:" + stmt.Name)
	defer finish()

	if stmt.Expression.Type() == Dataset {
		dsExpr, ok := stmt.Expression.(DatasetExpression)
		if !ok {
			return Binding{}, ErrUnsupportedType.New("expression declares Dataset type but does not implement DatasetExpression")
		}
		ds, err := dsExpr.ResolveDataset(ctx)
		if err != nil {
			log.WithError(err).Debug("statement failed")
			return Binding{}, err
		}
		e.Env.BindDataset(stmt.Name, ds)
		b, _ := e.Env.Lookup(stmt.Name)
		return b, nil
	}

	v, err := stmt.Expression.Resolve(ctx)
	if err != nil {
		log.WithError(err).Debug("statement failed")
		return Binding{}, err
	}
	e.Env.BindScalar(stmt.Name, v)
	b, _ := e.Env.Lookup(stmt.Name)
	return b, nil
}

// ExecuteScript runs a sequence of statements in submission order.
// Execution stops at the first failing statement and returns that
// statement's error unchanged. Prior statements' bindings remain in the
// Environment.
func (e *Engine) ExecuteScript(ctx context.Context, stmts []Statement) error {
	for _, stmt := range stmts {
		if _, err := e.Execute(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Result looks up a binding by name after execution, per the evaluator's
// contract that statement results are retrievable by name.
func (e *Engine) Result(name string) (Binding, error) {
	return e.Env.Lookup(name)
}

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

import "sync"

// Binding is a named value held by an Environment: either a scalar Value or
// a Dataset.
type Binding struct {
	Name    string
	Scalar  Value
	Dataset Dataset
	IsData  bool
}

// Environment is a flat, single-scope mapping from identifier name to bound
// value, owned by one script execution. It is the evaluator's sole mutable
// resource; concurrent execution over one Environment is not supported.
type Environment struct {
	mu     sync.Mutex
	values map[string]Binding
	order  []string
}

// NewEnvironment builds an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Binding)}
}

// BindScalar assigns a scalar value to name, overwriting any prior binding.
func (e *Environment) BindScalar(name string, v Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.set(name, Binding{Name: name, Scalar: v})
}

// BindDataset assigns a dataset value to name, overwriting any prior
// binding.
func (e *Environment) BindDataset(name string, d Dataset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.set(name, Binding{Name: name, Dataset: d, IsData: true})
}

func (e *Environment) set(name string, b Binding) {
	if _, ok := e.values[name]; !ok {
		e.order = append(e.order, name)
	}
	e.values[name] = b
}

// Lookup returns the binding for name, or ErrUndefinedReference.
func (e *Environment) Lookup(name string) (Binding, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.values[name]
	if !ok {
		return Binding{}, ErrUndefinedReference.New(name)
	}
	return b, nil
}

// Names returns bound identifier names in insertion order, for diagnostic
// listing. Lookup semantics do not depend on this order.
func (e *Environment) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

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
	"sort"

	"github.com/mitchellh/hashstructure"
)

// DataStructure is the ordered schema of a Dataset: a sequence of
// Components. Structures are immutable once built.
type DataStructure []Component

// NewDataStructure validates and builds a DataStructure. Name collisions
// and the "at least one identifier" invariant are checked here, since every
// dataset operator that derives a structure routes through this
// constructor.
func NewDataStructure(components ...Component) (DataStructure, error) {
	seen := make(map[string]bool, len(components))
	hasIdentifier := false
	for _, c := range components {
		if seen[c.Name] {
			return nil, ErrInvalidArgument.New("duplicate component name: " + c.Name)
		}
		seen[c.Name] = true
		if c.Role == RoleIdentifier {
			hasIdentifier = true
		}
	}
	if len(components) > 0 && !hasIdentifier {
		return nil, ErrInvalidArgument.New("data structure has no identifier component")
	}
	ds := make(DataStructure, len(components))
	copy(ds, components)
	return ds, nil
}

// IndexOf returns the position of the named component, or -1.
func (ds DataStructure) IndexOf(name string) int {
	for i, c := range ds {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Component returns the named component and whether it was found.
func (ds DataStructure) Component(name string) (Component, bool) {
	i := ds.IndexOf(name)
	if i < 0 {
		return Component{}, false
	}
	return ds[i], true
}

// Identifiers returns the subset of components with RoleIdentifier, in
// structure order.
func (ds DataStructure) Identifiers() []Component {
	var out []Component
	for _, c := range ds {
		if c.Role == RoleIdentifier {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the component names in structure order.
func (ds DataStructure) Names() []string {
	names := make([]string, len(ds))
	for i, c := range ds {
		names[i] = c.Name
	}
	return names
}

// signature is the hashable, order-independent representation used for
// structural equality: a multiset of (name, type, role) triples.
type signature struct {
	Name string
	Type Type
	Role Role
}

// Equal reports structural equality: equality by multiset of (name, type,
// role), independent of component order.
func (ds DataStructure) Equal(other DataStructure) bool {
	if len(ds) != len(other) {
		return false
	}
	h1, err1 := ds.hash()
	h2, err2 := other.hash()
	if err1 != nil || err2 != nil {
		return ds.slowEqual(other)
	}
	return h1 == h2
}

func (ds DataStructure) hash() (uint64, error) {
	sigs := make([]signature, len(ds))
	for i, c := range ds {
		sigs[i] = signature{Name: c.Name, Type: c.Type, Role: c.Role}
	}
	sort.Slice(sigs, func(i, j int) bool {
		if sigs[i].Name != sigs[j].Name {
			return sigs[i].Name < sigs[j].Name
		}
		return sigs[i].Type < sigs[j].Type
	})
	return hashstructure.Hash(sigs, nil)
}

func (ds DataStructure) slowEqual(other DataStructure) bool {
	index := make(map[signature]int, len(ds))
	for _, c := range ds {
		index[signature{c.Name, c.Type, c.Role}]++
	}
	for _, c := range other {
		key := signature{c.Name, c.Type, c.Role}
		if index[key] == 0 {
			return false
		}
		index[key]--
	}
	return true
}

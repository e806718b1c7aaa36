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

// Role is the part a Component plays within a DataStructure.
type Role int

const (
	// RoleIdentifier components jointly key a data point.
	RoleIdentifier Role = iota
	// RoleMeasure components carry observations.
	RoleMeasure
	// RoleAttribute components carry metadata.
	RoleAttribute
)

func (r Role) String() string {
	switch r {
	case RoleIdentifier:
		return "IDENTIFIER"
	case RoleMeasure:
		return "MEASURE"
	case RoleAttribute:
		return "ATTRIBUTE"
	default:
		return "UNKNOWN"
	}
}

// Component is a named, typed column descriptor with a role. Names are
// unique within a DataStructure.
type Component struct {
	Name string
	Type Type
	Role Role
}

// NewComponent builds a Component. Panics are never raised here: uniqueness
// and identifier invariants are enforced by DataStructure, not Component.
func NewComponent(name string, typ Type, role Role) Component {
	return Component{Name: name, Type: typ, Role: role}
}

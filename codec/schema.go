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

// Package codec implements the structure boundary's collaborators: the
// component JSON schema and CSV row parsing. Neither is part of the core
// evaluator; both translate external bytes into vtl's value model at the
// edge.
package codec

import (
	"encoding/json"
	"io"

	"github.com/vtl-lang/vtl"
)

// componentSchema is the wire shape of a single Component: {"name",
// "type", "role"}.
type componentSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Role string `json:"role"`
}

// DecodeStructure reads a JSON array of component schemas and builds a
// DataStructure. Unknown type or role tokens are rejected.
func DecodeStructure(r io.Reader) (vtl.DataStructure, error) {
	var schemas []componentSchema
	if err := json.NewDecoder(r).Decode(&schemas); err != nil {
		return nil, err
	}
	components := make([]vtl.Component, len(schemas))
	for i, s := range schemas {
		typ, err := decodeType(s.Type)
		if err != nil {
			return nil, err
		}
		role, err := decodeRole(s.Role)
		if err != nil {
			return nil, err
		}
		components[i] = vtl.NewComponent(s.Name, typ, role)
	}
	return vtl.NewDataStructure(components...)
}

// EncodeStructure writes ds as a JSON array of component schemas.
func EncodeStructure(w io.Writer, ds vtl.DataStructure) error {
	schemas := make([]componentSchema, len(ds))
	for i, c := range ds {
		schemas[i] = componentSchema{Name: c.Name, Type: encodeType(c.Type), Role: encodeRole(c.Role)}
	}
	return json.NewEncoder(w).Encode(schemas)
}

func decodeType(token string) (vtl.Type, error) {
	switch token {
	case "STRING":
		return vtl.String, nil
	case "INTEGER":
		return vtl.Integer, nil
	case "NUMBER":
		return vtl.Number, nil
	case "BOOLEAN":
		return vtl.Boolean, nil
	default:
		return 0, vtl.ErrUnsupportedType.New(token)
	}
}

func encodeType(t vtl.Type) string {
	switch t {
	case vtl.String:
		return "STRING"
	case vtl.Integer:
		return "INTEGER"
	case vtl.Number:
		return "NUMBER"
	case vtl.Boolean:
		return "BOOLEAN"
	default:
		return "STRING"
	}
}

func decodeRole(token string) (vtl.Role, error) {
	switch token {
	case "IDENTIFIER":
		return vtl.RoleIdentifier, nil
	case "MEASURE":
		return vtl.RoleMeasure, nil
	case "ATTRIBUTE":
		return vtl.RoleAttribute, nil
	default:
		return 0, vtl.ErrUnsupportedOperation.New("unknown component role: " + token)
	}
}

func encodeRole(r vtl.Role) string {
	switch r {
	case vtl.RoleIdentifier:
		return "IDENTIFIER"
	case vtl.RoleMeasure:
		return "MEASURE"
	default:
		return "ATTRIBUTE"
	}
}

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

import "fmt"

// Type is the closed set of scalar result types a ResolvableExpression may
// declare, plus Dataset for operators whose result is tabular.
type Type int

const (
	Integer Type = iota
	Number
	String
	Boolean
	Dataset
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Number:
		return "Number"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Dataset:
		return "Dataset"
	default:
		return "Unknown"
	}
}

// Value is a scalar value from the closed type set {Integer, Number, String,
// Boolean} or Null. Null is represented as a typed Value with IsNull true: it
// is a value, not an absence.
type Value struct {
	typ    Type
	isNull bool
	i      int64
	n      float64
	s      string
	b      bool
}

// Null constructs a null value of the given declared type.
func Null(t Type) Value {
	return Value{typ: t, isNull: true}
}

// NewInteger constructs a non-null Integer value.
func NewInteger(i int64) Value { return Value{typ: Integer, i: i} }

// NewNumber constructs a non-null Number value.
func NewNumber(n float64) Value { return Value{typ: Number, n: n} }

// NewString constructs a non-null String value.
func NewString(s string) Value { return Value{typ: String, s: s} }

// NewBoolean constructs a non-null Boolean value.
func NewBoolean(b bool) Value { return Value{typ: Boolean, b: b} }

// Type reports the value's declared scalar type.
func (v Value) Type() Type { return v.typ }

// IsNull reports whether the value is the null variant of its type.
func (v Value) IsNull() bool { return v.isNull }

// Int returns the Integer payload. Only meaningful when Type() == Integer
// and IsNull() is false.
func (v Value) Int() int64 { return v.i }

// Num returns the Number payload. Only meaningful when Type() == Number and
// IsNull() is false.
func (v Value) Num() float64 { return v.n }

// Str returns the String payload. Only meaningful when Type() == String and
// IsNull() is false.
func (v Value) Str() string { return v.s }

// Bool returns the Boolean payload. Only meaningful when Type() == Boolean
// and IsNull() is false.
func (v Value) Bool() bool { return v.b }

// AsNumber widens an Integer or Number value to a float64. It must not be
// called on a null value or on a String/Boolean value.
func (v Value) AsNumber() float64 {
	if v.typ == Integer {
		return float64(v.i)
	}
	return v.n
}

func (v Value) String() string {
	if v.isNull {
		return "null"
	}
	switch v.typ {
	case Integer:
		return fmt.Sprintf("%d", v.i)
	case Number:
		return fmt.Sprintf("%v", v.n)
	case String:
		return v.s
	case Boolean:
		return fmt.Sprintf("%v", v.b)
	default:
		return "<unknown>"
	}
}

// Equal reports whether two values are equal under null-is-equal-to-null
// semantics (used by union/set dataset operators for row-tuple comparison).
// It is not the `=` comparison operator, which yields null when either
// operand is null.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	if v.isNull || other.isNull {
		return v.isNull && other.isNull
	}
	switch v.typ {
	case Integer:
		return v.i == other.i
	case Number:
		return v.n == other.n
	case String:
		return v.s == other.s
	case Boolean:
		return v.b == other.b
	default:
		return false
	}
}

// WidenNumeric implements the Integer/Number widening rule of the arithmetic
// operators: if either operand is Number, both are treated as Number.
func WidenNumeric(a, b Type) Type {
	if a == Number || b == Number {
		return Number
	}
	return Integer
}

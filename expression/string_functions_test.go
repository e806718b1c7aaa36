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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtl-lang/vtl"
)

func strLit(s string) vtl.ResolvableExpression { return vtl.NewLiteral(vtl.NewString(s)) }
func intLit(i int64) vtl.ResolvableExpression  { return vtl.NewLiteral(vtl.NewInteger(i)) }

func TestTrimRemovesAsciiWhitespace(t *testing.T) {
	trim, err := NewTrim(strLit(" \t hello \n"))
	require.NoError(t, err)
	v, err := trim.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "hello", v.Str())
}

func TestLTrimAndRTrim(t *testing.T) {
	lt, err := NewLTrim(strLit("  hi  "))
	require.NoError(t, err)
	v, err := lt.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "hi  ", v.Str())

	rt, err := NewRTrim(strLit("  hi  "))
	require.NoError(t, err)
	v, err = rt.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "  hi", v.Str())
}

func TestTrimRejectsNonString(t *testing.T) {
	_, err := NewTrim(intLit(1))
	require.Error(t, err)
}

func TestUpperLower(t *testing.T) {
	upper, err := NewUpper(strLit("Hello"))
	require.NoError(t, err)
	v, err := upper.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "HELLO", v.Str())

	lower, err := NewLower(strLit("Hello"))
	require.NoError(t, err)
	v, err = lower.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "hello", v.Str())
}

func TestLengthCountsCodePointsNotBytes(t *testing.T) {
	length, err := NewLength(strLit("héllo"))
	require.NoError(t, err)
	v, err := length.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int())
}

func TestLengthNullPropagates(t *testing.T) {
	length, err := NewLength(vtl.NewLiteral(vtl.Null(vtl.String)))
	require.NoError(t, err)
	v, err := length.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestSubstrDefaultsAndClamps(t *testing.T) {
	s, err := NewSubstr(strLit("hello world"))
	require.NoError(t, err)
	v, err := s.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "hello world", v.Str())

	s, err = NewSubstr(strLit("hello world"), intLit(6))
	require.NoError(t, err)
	v, err = s.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "world", v.Str())

	s, err = NewSubstr(strLit("hello world"), intLit(0), intLit(5))
	require.NoError(t, err)
	v, err = s.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "hello", v.Str())

	s, err = NewSubstr(strLit("hi"), intLit(100))
	require.NoError(t, err)
	v, err = s.Resolve(vtl.NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, "", v.Str())
}

func TestSubstrTooManyArgs(t *testing.T) {
	_, err := NewSubstr(strLit("hi"), intLit(0), intLit(1), intLit(2))
	require.Error(t, err)
	require.Contains(t, err.Error(), "too many args (3) for: substr(")
}

func TestSubstrRejectsNonIntegerArg(t *testing.T) {
	_, err := NewSubstr(strLit("hi"), strLit("x"))
	require.Error(t, err)
}

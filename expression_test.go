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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralResolvesToItsValue(t *testing.T) {
	lit := NewLiteral(NewInteger(5))
	require.Equal(t, Integer, lit.Type())

	v, err := lit.Resolve(NewEmptyContext())
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int())
}

func TestLiteralStringQuotesStrings(t *testing.T) {
	require.Equal(t, `"hi"`, NewLiteral(NewString("hi")).String())
	require.Equal(t, "5", NewLiteral(NewInteger(5)).String())
	require.Equal(t, "null", NewLiteral(Null(String)).String())
}

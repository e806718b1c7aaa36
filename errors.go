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
	errors "gopkg.in/src-d/go-errors.v1"
)

// Error kinds for the evaluator, per the taxonomy the engine reports to its host.
// Each is a distinct *errors.Kind so callers can discriminate with Kind.Is(err).
var (
	// ErrUnsupportedType is raised at expression-construction time when an operator
	// receives operands of a type it does not accept.
	ErrUnsupportedType = errors.NewKind("unsupported type: %s")

	// ErrUnsupportedOperation is raised when an operator is invoked with a
	// structurally invalid argument list.
	ErrUnsupportedOperation = errors.NewKind("%s")

	// ErrUndefinedReference is raised when an identifier is not bound in the
	// environment.
	ErrUndefinedReference = errors.NewKind("undefined reference: %s")

	// ErrInvalidArgument is raised when a value-level precondition on an
	// operator's arguments fails.
	ErrInvalidArgument = errors.NewKind("invalid argument: %s")

	// ErrStructureMismatch is raised when set operator operands carry
	// incompatible structures.
	ErrStructureMismatch = errors.NewKind("structure mismatch: %s")
)

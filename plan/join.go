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

package plan

import "github.com/vtl-lang/vtl"

// JoinKind selects the Join operator's matching discipline.
type JoinKind int

const (
	// InnerJoin keeps only rows with a match on both sides.
	InnerJoin JoinKind = iota
	// LeftJoin keeps every left row, padding unmatched right sides with null.
	LeftJoin
	// FullOuterJoin keeps every row from both sides, padding the unmatched
	// side with null.
	FullOuterJoin
)

// Join matches Left and Right rows on their shared identifier components.
// Non-identifier components from both sides are merged; name collisions
// among them must be resolved with LeftRename/RightRename (the same
// old-to-new mapping Rename uses) before construction, or rejected.
type Join struct {
	datasetNode
	Kind        JoinKind
	Left, Right vtl.DatasetExpression
	LeftRename  map[string]string
	RightRename map[string]string
}

// NewJoin builds the join operator. The shared identifier set between left
// and right (after renaming) must be non-empty.
func NewJoin(kind JoinKind, left, right vtl.DatasetExpression, leftRename, rightRename map[string]string) (*Join, error) {
	j := &Join{Kind: kind, Left: left, Right: right, LeftRename: leftRename, RightRename: rightRename}
	if _, err := j.Structure(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Join) String() string { return "join(...)" }

// joinPlan carries the derived output structure plus, for each output
// position, where to pull the value from: the left row, the right row, or
// neither (always null, padding for the unmatched side of an outer join).
type joinPlan struct {
	structure   vtl.DataStructure
	sharedLeft  []int // positions of the shared identifiers in left's structure
	sharedRight []int // corresponding positions in right's structure
	fromLeft    []int // -1 if this output position doesn't come from left
	fromRight   []int // -1 if this output position doesn't come from right
}

func rename(mapping map[string]string, name string) string {
	if mapping == nil {
		return name
	}
	if n, ok := mapping[name]; ok {
		return n
	}
	return name
}

func (j *Join) plan(left, right vtl.DataStructure) (*joinPlan, error) {
	leftIDs := left.Identifiers()
	rightIDs := right.Identifiers()
	rightIDSet := make(map[string]bool, len(rightIDs))
	for _, c := range rightIDs {
		rightIDSet[rename(j.RightRename, c.Name)] = true
	}

	var shared []string
	for _, c := range leftIDs {
		name := rename(j.LeftRename, c.Name)
		if rightIDSet[name] {
			shared = append(shared, name)
		}
	}
	if len(shared) == 0 {
		return nil, vtl.ErrInvalidArgument.New("join requires a non-empty shared identifier set")
	}

	var components []vtl.Component
	var fromLeft, fromRight []int
	var sharedLeft, sharedRight []int
	seen := make(map[string]bool)

	addShared := func(name string) error {
		li := left.IndexOf(inverseRename(j.LeftRename, name))
		ri := right.IndexOf(inverseRename(j.RightRename, name))
		if li < 0 || ri < 0 {
			return vtl.ErrStructureMismatch.New("shared identifier not found: " + name)
		}
		if left[li].Type != right[ri].Type {
			return vtl.ErrStructureMismatch.New("shared identifier type mismatch: " + name)
		}
		components = append(components, vtl.NewComponent(name, left[li].Type, vtl.RoleIdentifier))
		fromLeft = append(fromLeft, li)
		fromRight = append(fromRight, ri)
		sharedLeft = append(sharedLeft, li)
		sharedRight = append(sharedRight, ri)
		seen[name] = true
		return nil
	}
	for _, name := range shared {
		if err := addShared(name); err != nil {
			return nil, err
		}
	}

	addSide := func(side vtl.DataStructure, mapping map[string]string, isLeft bool) error {
		for i, c := range side {
			if c.Role == vtl.RoleIdentifier {
				continue
			}
			name := rename(mapping, c.Name)
			if seen[name] {
				return vtl.ErrInvalidArgument.New("join component name collision: " + name)
			}
			seen[name] = true
			components = append(components, vtl.NewComponent(name, c.Type, c.Role))
			if isLeft {
				fromLeft = append(fromLeft, i)
				fromRight = append(fromRight, -1)
			} else {
				fromLeft = append(fromLeft, -1)
				fromRight = append(fromRight, i)
			}
		}
		return nil
	}
	if err := addSide(left, j.LeftRename, true); err != nil {
		return nil, err
	}
	if err := addSide(right, j.RightRename, false); err != nil {
		return nil, err
	}

	structure, err := vtl.NewDataStructure(components...)
	if err != nil {
		return nil, err
	}
	return &joinPlan{
		structure:   structure,
		sharedLeft:  sharedLeft,
		sharedRight: sharedRight,
		fromLeft:    fromLeft,
		fromRight:   fromRight,
	}, nil
}

// inverseRename finds the original (pre-rename) name that maps to name, or
// returns name unchanged if mapping is nil or has no such entry.
func inverseRename(mapping map[string]string, name string) string {
	for from, to := range mapping {
		if to == name {
			return from
		}
	}
	return name
}

func (j *Join) Structure() (vtl.DataStructure, error) {
	leftStruct, err := j.Left.Structure()
	if err != nil {
		return nil, err
	}
	rightStruct, err := j.Right.Structure()
	if err != nil {
		return nil, err
	}
	p, err := j.plan(leftStruct, rightStruct)
	if err != nil {
		return nil, err
	}
	return p.structure, nil
}

func (j *Join) ResolveDataset(ctx *vtl.Context) (vtl.Dataset, error) {
	leftDS, err := j.Left.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	rightDS, err := j.Right.ResolveDataset(ctx)
	if err != nil {
		return nil, err
	}
	p, err := j.plan(leftDS.Structure(), rightDS.Structure())
	if err != nil {
		return nil, err
	}

	leftRows, err := vtl.Materialize(ctx, leftDS)
	if err != nil {
		return nil, err
	}
	rightRows, err := vtl.Materialize(ctx, rightDS)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string][]vtl.DataPoint)
	for _, row := range rightRows {
		byKey[joinKey(row, p.sharedRight)] = append(byKey[joinKey(row, p.sharedRight)], row)
	}
	matchedRight := make(map[string]bool)

	var rows []vtl.DataPoint
	emit := func(left, right vtl.DataPoint, hasLeft, hasRight bool) error {
		values := make([]vtl.Value, len(p.structure))
		for i := range values {
			switch {
			case p.fromLeft[i] >= 0 && hasLeft:
				values[i] = left.At(p.fromLeft[i])
			case p.fromRight[i] >= 0 && hasRight:
				values[i] = right.At(p.fromRight[i])
			default:
				values[i] = vtl.Null(p.structure[i].Type)
			}
		}
		dp, err := vtl.NewDataPoint(p.structure, values)
		if err != nil {
			return err
		}
		rows = append(rows, dp)
		return nil
	}

	for _, l := range leftRows {
		key := joinKey(l, p.sharedLeft)
		matches := byKey[key]
		if len(matches) == 0 {
			if j.Kind == LeftJoin || j.Kind == FullOuterJoin {
				if err := emit(l, vtl.DataPoint{}, true, false); err != nil {
					return nil, err
				}
			}
			continue
		}
		matchedRight[key] = true
		for _, r := range matches {
			if err := emit(l, r, true, true); err != nil {
				return nil, err
			}
		}
	}

	if j.Kind == FullOuterJoin {
		for key, matches := range byKey {
			if matchedRight[key] {
				continue
			}
			for _, r := range matches {
				if err := emit(vtl.DataPoint{}, r, false, true); err != nil {
					return nil, err
				}
			}
		}
	}

	return &memDataset{structure: p.structure, rows: rows}, nil
}

// joinKey renders the shared identifier values of row at the given
// positions as a delimited string suitable for hash-map matching.
func joinKey(row vtl.DataPoint, positions []int) string {
	key := ""
	for i, pos := range positions {
		if i > 0 {
			key += "\x1f"
		}
		key += row.At(pos).String()
	}
	return key
}

// memDataset is a plain materialized Dataset shared by the operators in this
// package that must see every input row before producing output.
type memDataset struct {
	structure vtl.DataStructure
	rows      []vtl.DataPoint
}

func (d *memDataset) Structure() vtl.DataStructure { return d.structure }

func (d *memDataset) Iterator(ctx *vtl.Context) (vtl.RowIter, error) {
	return vtl.NewSliceIter(d.rows), nil
}

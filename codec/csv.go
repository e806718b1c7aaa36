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

package codec

import (
	"encoding/csv"
	"io"

	"github.com/spf13/cast"
	"github.com/vtl-lang/vtl"
)

// DecodeCSV parses rows positionally against structure's component order.
// Type coercion follows each component's declared type; empty fields
// decode to null. The reader is not assumed to carry a header row: callers
// that need to skip one should read it themselves first.
func DecodeCSV(r io.Reader, structure vtl.DataStructure) ([]vtl.DataPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(structure)

	var rows []vtl.DataPoint
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		values := make([]vtl.Value, len(structure))
		for i, field := range record {
			v, err := coerceField(field, structure[i].Type)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		dp, err := vtl.NewDataPoint(structure, values)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dp)
	}
	return rows, nil
}

// coerceField converts a single CSV field to typ, using cast's lenient
// string coercion. An empty field is always null, regardless of typ.
func coerceField(field string, typ vtl.Type) (vtl.Value, error) {
	if field == "" {
		return vtl.Null(typ), nil
	}
	switch typ {
	case vtl.Integer:
		i, err := cast.ToInt64E(field)
		if err != nil {
			return vtl.Value{}, vtl.ErrInvalidArgument.New("not an integer: " + field)
		}
		return vtl.NewInteger(i), nil
	case vtl.Number:
		n, err := cast.ToFloat64E(field)
		if err != nil {
			return vtl.Value{}, vtl.ErrInvalidArgument.New("not a number: " + field)
		}
		return vtl.NewNumber(n), nil
	case vtl.Boolean:
		b, err := cast.ToBoolE(field)
		if err != nil {
			return vtl.Value{}, vtl.ErrInvalidArgument.New("not a boolean: " + field)
		}
		return vtl.NewBoolean(b), nil
	default:
		return vtl.NewString(field), nil
	}
}

// EncodeCSV writes rows as CSV records in structure's component order.
// Null fields are written as empty strings.
func EncodeCSV(w io.Writer, rows []vtl.DataPoint) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		record := make([]string, row.Len())
		for i := 0; i < row.Len(); i++ {
			v := row.At(i)
			if v.IsNull() {
				record[i] = ""
				continue
			}
			record[i] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/sentriefraud/ruleengine/engine"
	"github.com/sentriefraud/ruleengine/value"
)

// loadEngine accepts either a serialized bytecode.Program or raw DSL source
// in data, same as the devtool CLI's `<bytecode|file>` arguments describe:
// it sniffs by attempting FromBytecode first and falling back to compiling
// the bytes as source.
func loadEngine(ctx context.Context, data []byte, cfg engine.Config) (*engine.Engine, error) {
	if eng, err := engine.FromBytecode(data, cfg); err == nil {
		return eng, nil
	}
	return engine.FromDSL(ctx, string(data), cfg)
}

// recordFromJSON decodes a JSON object into a Record, one field per key.
// Nested objects/arrays are stored as strings (the DSL has no composite
// value kind — spec §3's Value set is Null/Bool/Int/Float/Str only).
func recordFromJSON(raw string) (*value.Record, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, errors.Wrap(err, "decoding record JSON")
	}
	rec := value.NewRecord()
	for k, v := range fields {
		rec.Set(k, anyToValue(v))
	}
	return rec, nil
}

func anyToValue(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool(t)
	case float64:
		if t == float64(int64(t)) {
			return value.Int(int64(t))
		}
		return value.Float(t)
	case string:
		return value.Str(t)
	default:
		encoded, err := json.Marshal(t)
		if err != nil {
			return value.Null
		}
		return value.Str(string(encoded))
	}
}

func recordToMap(rec *value.Record) map[string]any {
	out := map[string]any{}
	for k, v := range rec.Fields() {
		out[k] = valueToAny(v)
	}
	return out
}

func valueToAny(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.AsBool()
	case value.KindInt:
		return v.AsInt()
	case value.KindFloat:
		return v.AsFloat()
	case value.KindStr:
		return v.AsStr()
	default:
		return nil
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return data, nil
}

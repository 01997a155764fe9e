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

package bytecode

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"github.com/sentriefraud/ruleengine/value"
)

// Container format constants (spec §6).
const (
	Magic          = "FRE1"
	FormatVersion  = uint16(1)
	tagNull  byte  = 0
	tagBool  byte  = 1
	tagInt   byte  = 2
	tagFloat byte  = 3
	tagStr   byte  = 4
)

// ContainerVersion is the additive semver trailer written after the core,
// versioned container. It has no bearing on the u16 `version` field's
// decode-or-reject contract: a decoder that doesn't understand the trailer
// simply ignores it.
var ContainerVersion = semver.MustParse("1.0.0")

// Encode writes prg's deterministic binary form to w: stable field
// ordering, no platform-dependent padding (spec §4.5 to_bytecode).
func Encode(prg *Program, w io.Writer) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return errors.Wrap(err, "bytecode: write magic")
	}
	if err := binary.Write(w, binary.LittleEndian, FormatVersion); err != nil {
		return errors.Wrap(err, "bytecode: write version")
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(prg.Constants))); err != nil {
		return errors.Wrap(err, "bytecode: write constants_count")
	}
	for i, c := range prg.Constants {
		if err := writeValue(w, c); err != nil {
			return errors.Wrapf(err, "bytecode: write constant %d", i)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(prg.Functions))); err != nil {
		return errors.Wrap(err, "bytecode: write functions_count")
	}
	for i, fn := range prg.Functions {
		if err := writeFunctionDef(w, fn); err != nil {
			return errors.Wrapf(err, "bytecode: write function %d", i)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(prg.Rules))); err != nil {
		return errors.Wrap(err, "bytecode: write rules_count")
	}
	for i, r := range prg.Rules {
		if err := writeRuleDef(w, r); err != nil {
			return errors.Wrapf(err, "bytecode: write rule %d", i)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(prg.Code))); err != nil {
		return errors.Wrap(err, "bytecode: write code_len")
	}
	if _, err := w.Write(prg.Code); err != nil {
		return errors.Wrap(err, "bytecode: write code")
	}

	verStr := ContainerVersion.String()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(verStr))); err != nil {
		return errors.Wrap(err, "bytecode: write trailer")
	}
	_, err := io.WriteString(w, verStr)
	return errors.Wrap(err, "bytecode: write trailer")
}

// Marshal is a convenience wrapper over Encode returning the bytes directly.
func Marshal(prg *Program) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(prg, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads and fully validates a container, rejecting unknown tags,
// out-of-range indices, out-of-bounds jump targets, and Call arity
// mismatches before returning (spec §4.5 from_bytecode); see Validate for
// what is not checked.
func Decode(r io.Reader) (*Program, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, errors.Wrap(err, "bytecode: read magic")
	}
	if string(magic) != Magic {
		return nil, errors.Errorf("bytecode: bad magic %q", magic)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "bytecode: read version")
	}
	if version != FormatVersion {
		return nil, errors.Errorf("bytecode: unsupported version %d (expected %d)", version, FormatVersion)
	}

	prg := &Program{}

	var constCount uint32
	if err := binary.Read(r, binary.LittleEndian, &constCount); err != nil {
		return nil, errors.Wrap(err, "bytecode: read constants_count")
	}
	prg.Constants = make([]value.Value, constCount)
	for i := range prg.Constants {
		v, err := readValue(r)
		if err != nil {
			return nil, errors.Wrapf(err, "bytecode: read constant %d", i)
		}
		prg.Constants[i] = v
	}

	var fnCount uint32
	if err := binary.Read(r, binary.LittleEndian, &fnCount); err != nil {
		return nil, errors.Wrap(err, "bytecode: read functions_count")
	}
	prg.Functions = make([]FunctionDef, fnCount)
	for i := range prg.Functions {
		fn, err := readFunctionDef(r)
		if err != nil {
			return nil, errors.Wrapf(err, "bytecode: read function %d", i)
		}
		prg.Functions[i] = fn
	}

	var ruleCount uint32
	if err := binary.Read(r, binary.LittleEndian, &ruleCount); err != nil {
		return nil, errors.Wrap(err, "bytecode: read rules_count")
	}
	prg.Rules = make([]RuleDef, ruleCount)
	for i := range prg.Rules {
		rd, err := readRuleDef(r)
		if err != nil {
			return nil, errors.Wrapf(err, "bytecode: read rule %d", i)
		}
		prg.Rules[i] = rd
	}

	var codeLen uint32
	if err := binary.Read(r, binary.LittleEndian, &codeLen); err != nil {
		return nil, errors.Wrap(err, "bytecode: read code_len")
	}
	prg.Code = make([]byte, codeLen)
	if _, err := io.ReadFull(r, prg.Code); err != nil {
		return nil, errors.Wrap(err, "bytecode: read code")
	}

	// Trailer is additive and optional: a short/absent read is tolerated so
	// older producers' output still decodes.
	var trailerLen uint32
	if err := binary.Read(r, binary.LittleEndian, &trailerLen); err == nil && trailerLen > 0 {
		buf := make([]byte, trailerLen)
		_, _ = io.ReadFull(r, buf)
	}

	if err := Validate(prg); err != nil {
		return nil, err
	}
	return prg, nil
}

// Unmarshal is a convenience wrapper over Decode for an in-memory byte slice.
func Unmarshal(data []byte) (*Program, error) {
	return Decode(bytes.NewReader(data))
}

func writeValue(w io.Writer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		_, err := w.Write([]byte{tagNull})
		return err
	case value.KindBool:
		b := byte(0)
		if v.AsBool() {
			b = 1
		}
		_, err := w.Write([]byte{tagBool, b})
		return err
	case value.KindInt:
		if err := binary.Write(w, binary.LittleEndian, tagInt); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, v.AsInt())
	case value.KindFloat:
		if err := binary.Write(w, binary.LittleEndian, tagFloat); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, v.AsFloat())
	case value.KindStr:
		if err := binary.Write(w, binary.LittleEndian, tagStr); err != nil {
			return err
		}
		return writeString(w, v.AsStr())
	default:
		return errors.Errorf("bytecode: unsupported constant kind %v", v.Kind())
	}
}

func readValue(r io.Reader) (value.Value, error) {
	var tag byte
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return value.Null, err
	}
	switch tag {
	case tagNull:
		return value.Null, nil
	case tagBool:
		var b byte
		if err := binary.Read(r, binary.LittleEndian, &b); err != nil {
			return value.Null, err
		}
		return value.Bool(b != 0), nil
	case tagInt:
		var n int64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return value.Null, err
		}
		return value.Int(n), nil
	case tagFloat:
		var f float64
		if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
			return value.Null, err
		}
		return value.Float(f), nil
	case tagStr:
		s, err := readString(r)
		if err != nil {
			return value.Null, err
		}
		return value.Str(s), nil
	default:
		return value.Null, errors.Errorf("bytecode: unknown value tag 0x%02x", tag)
	}
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeStringSlice(w io.Writer, ss []string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func readStringSlice(r io.Reader) ([]string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	ss := make([]string, n)
	for i := range ss {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		ss[i] = s
	}
	return ss, nil
}

func writeFunctionDef(w io.Writer, fn FunctionDef) error {
	if err := writeString(w, fn.Name); err != nil {
		return err
	}
	if err := writeStringSlice(w, fn.ParamNames); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(fn.EntryIP)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint32(fn.LocalCount))
}

func readFunctionDef(r io.Reader) (FunctionDef, error) {
	var fn FunctionDef
	name, err := readString(r)
	if err != nil {
		return fn, err
	}
	params, err := readStringSlice(r)
	if err != nil {
		return fn, err
	}
	var entryIP, localCount uint32
	if err := binary.Read(r, binary.LittleEndian, &entryIP); err != nil {
		return fn, err
	}
	if err := binary.Read(r, binary.LittleEndian, &localCount); err != nil {
		return fn, err
	}
	fn.Name, fn.ParamNames, fn.EntryIP, fn.LocalCount = name, params, int(entryIP), int(localCount)
	return fn, nil
}

func writeRuleDef(w io.Writer, rd RuleDef) error {
	if err := writeString(w, rd.Name); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, rd.Priority); err != nil {
		return err
	}
	enabled := byte(0)
	if rd.Enabled {
		enabled = 1
	}
	if err := binary.Write(w, binary.LittleEndian, enabled); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(rd.EntryIP)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint32(rd.EndIP))
}

func readRuleDef(r io.Reader) (RuleDef, error) {
	var rd RuleDef
	name, err := readString(r)
	if err != nil {
		return rd, err
	}
	var priority int32
	if err := binary.Read(r, binary.LittleEndian, &priority); err != nil {
		return rd, err
	}
	var enabled byte
	if err := binary.Read(r, binary.LittleEndian, &enabled); err != nil {
		return rd, err
	}
	var entryIP, endIP uint32
	if err := binary.Read(r, binary.LittleEndian, &entryIP); err != nil {
		return rd, err
	}
	if err := binary.Read(r, binary.LittleEndian, &endIP); err != nil {
		return rd, err
	}
	rd.Name, rd.Priority, rd.Enabled = name, priority, enabled != 0
	rd.EntryIP, rd.EndIP = int(entryIP), int(endIP)
	return rd, nil
}

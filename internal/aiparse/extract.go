package aiparse

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
)

// ErrModelCall marks a failed request to the model endpoint. It is never
// absorbed by the fallback parser.
var ErrModelCall = errors.New("model call failed")

// Confidence records which parsing stage produced a result.
type Confidence string

const (
	High Confidence = "high"
	Low  Confidence = "low"
)

// ExtractObject decodes the first balanced top-level {...} substring of raw
// that is a valid JSON object. When a whole-object decode into dst fails the
// fields are decoded one by one and mistyped fields keep their zero value.
// dst must be a non-nil pointer and is only written on success.
func ExtractObject(raw string, dst any) bool {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	elemType := rv.Elem().Type()

	for _, candidate := range Objects(raw) {
		if !json.Valid([]byte(candidate)) {
			continue
		}
		fresh := reflect.New(elemType)
		if err := json.Unmarshal([]byte(candidate), fresh.Interface()); err != nil {
			if !decodeFields([]byte(candidate), fresh.Elem()) {
				continue
			}
		}
		rv.Elem().Set(fresh.Elem())
		return true
	}
	return false
}

// decodeFields fills the struct dst from a JSON object field by field,
// matching names the way encoding/json does.
func decodeFields(b []byte, dst reflect.Value) bool {
	if dst.Kind() != reflect.Struct {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return false
	}

	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "-" {
			continue
		}
		value, ok := lookupField(fields, name)
		if !ok {
			continue
		}
		tmp := reflect.New(f.Type)
		if err := json.Unmarshal(value, tmp.Interface()); err == nil {
			dst.Field(i).Set(tmp.Elem())
			continue
		}
		nested := reflect.New(f.Type).Elem()
		if decodeFields(value, nested) {
			dst.Field(i).Set(nested)
		}
	}
	return true
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func lookupField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := fields[name]; ok {
		return v, true
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Objects returns every balanced top-level brace-delimited substring of raw in
// order. Braces inside JSON string literals are ignored. An opening brace that
// never closes is skipped and scanning resumes right after it.
func Objects(raw string) []string {
	var out []string
	i := 0
	for i < len(raw) {
		if raw[i] != '{' {
			i++
			continue
		}
		end := matchBrace(raw, i)
		if end < 0 {
			i++
			continue
		}
		out = append(out, raw[i:end+1])
		i = end + 1
	}
	return out
}

// matchBrace returns the index of the brace closing raw[start], or -1.
func matchBrace(raw string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

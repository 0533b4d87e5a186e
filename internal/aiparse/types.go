package aiparse

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// StringList decodes a JSON array of scalars. A bare string becomes a
// one-element list and null an empty one, since models asked for arrays
// sometimes answer with a sentence.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = StringList{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{s}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(item)))
	}
	*l = out
	return nil
}

// Int decodes a JSON number or a numeric string. null leaves the value
// unchanged.
type Int int

func (n *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = Int(int(f))
	return nil
}

// Text decodes any JSON value into a string: strings as-is, arrays joined
// with a space, null as empty and other scalars or objects as their JSON.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '[':
		var items StringList
		if err := items.UnmarshalJSON(b); err != nil {
			return err
		}
		*t = Text(strings.Join(items, " "))
	default:
		if !json.Valid(b) {
			return errors.New("aiparse: invalid text value")
		}
		*t = Text(b)
	}
	return nil
}

package models

import (
	"encoding/json"
	"reflect"
)

// StringList is an ordered list of strings that travels over the wire as a
// JSON-encoded string (e.g. "[\"Go\",\"React\"]"), the form the site client
// parses. Decoding also accepts a plain JSON array.
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	items := []string(l)
	if items == nil {
		items = []string{}
	}
	inner, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return &json.UnmarshalTypeError{Value: "non-list", Type: reflect.TypeOf(StringList{})}
	}
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(StringList{})}
	}
	*l = items
	return nil
}

// clone keeps stored records from sharing backing arrays with callers.
func (l StringList) clone() StringList {
	if l == nil {
		return nil
	}
	out := make(StringList, len(l))
	copy(out, l)
	return out
}

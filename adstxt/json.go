package adstxt

import (
	"bytes"
	"encoding/json"

	"github.com/prebid/adstxt/errortypes"
)

var null = []byte("null")

// MarshalJSON writes entries as an array, never null.
func (m Manifest) MarshalJSON() ([]byte, error) {
	type manifest Manifest
	out := manifest(m)
	if out.Entries == nil {
		out.Entries = []Entry{}
	}
	return json.Marshal(out)
}

// MarshalJSON writes the variables as an object whose keys keep their insertion order.
func (v Variables) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range v.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		value, err := v.values[key].MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the order of its keys. A repeated key replaces the
// earlier value.
func (v *Variables) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	token, err := dec.Token()
	if err != nil {
		return err
	}
	if token == nil {
		*v = Variables{}
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return &errortypes.ValidationError{Message: "variables should be an object"}
	}

	var parsed Variables
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := token.(string)

		var value Value
		if err := dec.Decode(&value); err != nil {
			return err
		}
		parsed.Set(key, value)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalJSON writes a single value as a JSON string and a list as a JSON array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case SingleValue:
		if len(v.Values) != 1 {
			break
		}
		return json.Marshal(v.Values[0])
	case MultiValue:
		if v.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Values)
	}
	return nil, &errortypes.ValidationError{Message: "value should be of type string or []string"}
}

// UnmarshalJSON accepts a JSON string or an array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return &errortypes.ValidationError{Message: "value should be of type string or []string"}
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = Single(single)
		return nil
	}

	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*v = Multi(multi...)
		return nil
	}

	return &errortypes.ValidationError{Message: "value should be of type string or []string"}
}

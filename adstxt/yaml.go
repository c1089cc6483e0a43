package adstxt

import (
	"fmt"

	"github.com/prebid/adstxt/errortypes"
	"gopkg.in/yaml.v2"
)

// MarshalYAML writes the variables as a mapping whose keys keep their insertion order.
func (v Variables) MarshalYAML() (interface{}, error) {
	out := make(yaml.MapSlice, 0, len(v.keys))
	for _, key := range v.keys {
		value, err := v.values[key].MarshalYAML()
		if err != nil {
			return nil, err
		}
		out = append(out, yaml.MapItem{Key: key, Value: value})
	}
	return out, nil
}

// UnmarshalYAML reads a mapping, keeping the order of its keys. Scalar values that are not
// strings (numbers, booleans) are kept exactly as written, e.g. 1.50 stays "1.50".
func (v *Variables) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var items yaml.MapSlice
	if err := unmarshal(&items); err != nil {
		return err
	}
	values := make(map[string]Value, len(items))
	if err := unmarshal(&values); err != nil {
		return err
	}

	var parsed Variables
	for _, item := range items {
		key, ok := item.Key.(string)
		if !ok {
			return &errortypes.ValidationError{Message: fmt.Sprintf("variable name should be a string: %v", item.Key)}
		}
		if item.Value == nil {
			return invalidYAMLValue()
		}
		parsed.Set(key, values[key])
	}

	*v = parsed
	return nil
}

// MarshalYAML writes a single value as a scalar and a list as a sequence.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case SingleValue:
		if len(v.Values) == 1 {
			return v.Values[0], nil
		}
	case MultiValue:
		return append([]string{}, v.Values...), nil
	}
	return nil, &errortypes.ValidationError{Message: "value should be of type string or []string"}
}

// UnmarshalYAML accepts a scalar or a sequence of scalars, read as their YAML source text.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch typed := raw.(type) {
	case []interface{}:
		for _, item := range typed {
			if !isYAMLScalar(item) {
				return invalidYAMLValue()
			}
		}
		var values []string
		if err := unmarshal(&values); err != nil {
			return invalidYAMLValue()
		}
		*v = Multi(values...)
	default:
		if !isYAMLScalar(typed) {
			return invalidYAMLValue()
		}
		var value string
		if err := unmarshal(&value); err != nil {
			return invalidYAMLValue()
		}
		*v = Single(value)
	}
	return nil
}

func isYAMLScalar(raw interface{}) bool {
	switch raw.(type) {
	case nil, []interface{}, map[interface{}]interface{}, yaml.MapSlice:
		return false
	default:
		return true
	}
}

func invalidYAMLValue() error {
	return &errortypes.ValidationError{Message: "value should be of type string or []string"}
}

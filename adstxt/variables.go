package adstxt

// ValueKind tags the shape held by a Value.
type ValueKind int

const (
	// InvalidValue is the zero ValueKind. Generating a variable with this kind fails.
	InvalidValue ValueKind = iota
	// SingleValue holds exactly one string.
	SingleValue
	// MultiValue holds an ordered list of strings, one per repeated KEY=VALUE line.
	MultiValue
)

func (k ValueKind) String() string {
	switch k {
	case SingleValue:
		return "single"
	case MultiValue:
		return "multi"
	default:
		return "invalid"
	}
}

// Value is the value of a variable: either a single string or a list of strings.
//
// Always switch on Kind before reading Values.
type Value struct {
	Kind   ValueKind
	Values []string
}

// Single builds a single string Value.
func Single(value string) Value {
	return Value{Kind: SingleValue, Values: []string{value}}
}

// Multi builds a list Value.
func Multi(values ...string) Value {
	return Value{Kind: MultiValue, Values: append([]string{}, values...)}
}

// append returns v with value added, promoting a single value to a list.
func (v Value) append(value string) Value {
	switch v.Kind {
	case SingleValue:
		return Multi(v.Values[0], value)
	case MultiValue:
		values := make([]string, len(v.Values), len(v.Values)+1)
		copy(values, v.Values)
		return Value{Kind: MultiValue, Values: append(values, value)}
	default:
		return Single(value)
	}
}

// Equal reports whether v and o hold the same shape and strings.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind || len(v.Values) != len(o.Values) {
		return false
	}
	for i := range v.Values {
		if v.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

// Variables maps variable names to values and remembers the order keys were first added.
//
// The zero value is empty and ready to use.
type Variables struct {
	keys   []string
	values map[string]Value
}

// Add records one KEY=VALUE occurrence. A repeated key turns a single value into a list, and
// further repetitions are appended in order.
func (v *Variables) Add(key, value string) {
	if existing, ok := v.values[key]; ok {
		v.values[key] = existing.append(value)
		return
	}
	v.Set(key, Single(value))
}

// Set stores value under key, replacing any previous value but keeping the key's position.
func (v *Variables) Set(key string, value Value) {
	if v.values == nil {
		v.values = make(map[string]Value)
	}
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get returns the value stored under key.
func (v Variables) Get(key string) (Value, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (v Variables) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Len returns the number of distinct keys.
func (v Variables) Len() int {
	return len(v.keys)
}

// Equal reports whether v and o hold the same keys, in the same order, with equal values.
func (v Variables) Equal(o Variables) bool {
	if len(v.keys) != len(o.keys) {
		return false
	}
	for i, key := range v.keys {
		if o.keys[i] != key || !v.values[key].Equal(o.values[key]) {
			return false
		}
	}
	return true
}

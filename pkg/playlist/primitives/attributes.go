package primitives

import (
	"strings"
)

// Attributes is the ordered attribute list of a tag.
// Keys are unique; Set on an existing key overwrites the value in place.
// The zero value is an empty list ready for use.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Get returns the value of an attribute.
func (a Attributes) Get(key string) (string, bool) {
	val, ok := a.values[key]
	return val, ok
}

// Has reports whether an attribute is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Set adds an attribute, or overwrites it if already present.
// Insertion order is kept across overwrites.
func (a *Attributes) Set(key string, val string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = val
}

// Keys returns the attribute names in insertion order.
func (a Attributes) Keys() []string {
	ret := make([]string, len(a.keys))
	copy(ret, a.keys)
	return ret
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.keys)
}

// Map returns the attributes as a plain map.
func (a Attributes) Map() map[string]string {
	ret := make(map[string]string, len(a.keys))
	for _, key := range a.keys {
		ret[key] = a.values[key]
	}
	return ret
}

// splitSegments splits an attribute list on top-level commas.
// Commas inside double-quoted values are not separators.
func splitSegments(v string) []string {
	var segs []string
	start := 0
	quoted := false

	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			quoted = !quoted

		case ',':
			if !quoted {
				segs = append(segs, v[start:i])
				start = i + 1
			}
		}
	}

	return append(segs, v[start:])
}

// UnmarshalAttributes decodes an attribute list.
// It is best-effort and never fails: a segment without '=' becomes an
// attribute with an empty value, and on unbalanced quoting the value is
// taken verbatim, stray quotes included.
func UnmarshalAttributes(v string) Attributes {
	var ret Attributes

	if v == "" {
		return ret
	}

	for _, seg := range splitSegments(v) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		key, val, found := strings.Cut(seg, "=")
		if !found {
			ret.Set(seg, "")
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}

		ret.Set(key, val)
	}

	return ret
}

// Marshal encodes the attribute list, in insertion order.
// Values containing a top-level separator are quoted so that the output
// decodes back to the same attributes.
func (a Attributes) Marshal() string {
	var b strings.Builder

	for i, key := range a.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		val := a.values[key]

		b.WriteString(key)
		b.WriteByte('=')

		if strings.ContainsAny(val, ",=") {
			b.WriteByte('"')
			b.WriteString(val)
			b.WriteByte('"')
		} else {
			b.WriteString(val)
		}
	}

	return b.String()
}

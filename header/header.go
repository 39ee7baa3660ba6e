// SPDX-License-Identifier: EPL-2.0

package header

// Kind is the declared type of a header field value.
type Kind int

const (
	// Integer is the "-i" type flag.
	Integer Kind = iota
	// Real is the "-r" type flag.
	Real
	// String is the "-sN" type flag, where N is the value byte length.
	String
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case String:
		return "string"
	}
	return "unknown"
}

// Field is a single name/type/value entry of a SPHERE header.
// Only the value slot matching Kind is meaningful.
type Field struct {
	Name string
	Kind Kind
	Int  int64
	Real float64
	Str  string
}

// IntField builds an integer field.
func IntField(name string, value int64) Field {
	return Field{Name: name, Kind: Integer, Int: value}
}

// RealField builds a real field.
func RealField(name string, value float64) Field {
	return Field{Name: name, Kind: Real, Real: value}
}

// StringField builds a string field.
func StringField(name, value string) Field {
	return Field{Name: name, Kind: String, Str: value}
}

// Fields is an ordered set of header fields. Names are unique; insertion
// order is preserved so a parsed header serializes back in its original
// field order, unknown fields included.
type Fields struct {
	order []string
	index map[string]Field
}

// NewFields returns an empty field set.
func NewFields() *Fields {
	return &Fields{index: make(map[string]Field)}
}

// Len reports the number of fields.
func (f *Fields) Len() int { return len(f.order) }

// Names returns the field names in insertion order.
func (f *Fields) Names() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// Set adds fld, or replaces the value of an existing field with the same
// name while keeping its original position.
func (f *Fields) Set(fld Field) {
	if _, ok := f.index[fld.Name]; !ok {
		f.order = append(f.order, fld.Name)
	}
	f.index[fld.Name] = fld
}

// SetInt sets name to an integer value.
func (f *Fields) SetInt(name string, value int64) { f.Set(IntField(name, value)) }

// SetReal sets name to a real value.
func (f *Fields) SetReal(name string, value float64) { f.Set(RealField(name, value)) }

// SetString sets name to a string value.
func (f *Fields) SetString(name, value string) { f.Set(StringField(name, value)) }

// Get returns the field for name.
func (f *Fields) Get(name string) (Field, bool) {
	fld, ok := f.index[name]
	return fld, ok
}

// Int returns the value of an integer field, or false when the field is
// absent or not an integer.
func (f *Fields) Int(name string) (int64, bool) {
	fld, ok := f.index[name]
	if !ok || fld.Kind != Integer {
		return 0, false
	}
	return fld.Int, true
}

// Real returns the value of a real field, or false when the field is
// absent or not a real.
func (f *Fields) Real(name string) (float64, bool) {
	fld, ok := f.index[name]
	if !ok || fld.Kind != Real {
		return 0, false
	}
	return fld.Real, true
}

// String returns the value of a string field, or false when the field is
// absent or not a string.
func (f *Fields) String(name string) (string, bool) {
	fld, ok := f.index[name]
	if !ok || fld.Kind != String {
		return "", false
	}
	return fld.Str, true
}

// Delete removes name from the set. Removing an absent name is a no-op.
func (f *Fields) Delete(name string) {
	if _, ok := f.index[name]; !ok {
		return
	}
	delete(f.index, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Clone returns an independent copy of the field set.
func (f *Fields) Clone() *Fields {
	c := NewFields()
	for _, name := range f.order {
		c.Set(f.index[name])
	}
	return c
}

// Equal reports whether both sets hold the same fields in the same order.
func (f *Fields) Equal(other *Fields) bool {
	if len(f.order) != len(other.order) {
		return false
	}
	for i, name := range f.order {
		if other.order[i] != name || other.index[name] != f.index[name] {
			return false
		}
	}
	return true
}

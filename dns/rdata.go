package dns

// RData holds the field values of one resource record, validated against
// a TypeDef.
type RData struct {
	def    *TypeDef
	values [][]Value
}

// NewRData returns an empty RData for def.
func NewRData(def *TypeDef) *RData {
	return &RData{def: def, values: make([][]Value, def.Len())}
}

// TypeDef returns the definition this RData was built against.
func (r *RData) TypeDef() *TypeDef { return r.def }

// Append adds one value to the field at index, validating its kind
// against the field definition and that a non-repeating field does not
// already hold a value.
func (r *RData) Append(index int, v Value) error {
	field, ok := r.def.Field(index)
	if !ok {
		return newError(InvalidFieldDefinition, "rdata append", "field index %d out of range", index)
	}
	if v.Kind() != field.Kind {
		return newError(FieldValueOutOfRange, "rdata append", "field %q expects %s, got %s", field.Name, field.Kind, v.Kind())
	}
	if !field.AllowsMultiple && len(r.values[index]) >= 1 {
		return newError(InvalidFieldDefinition, "rdata append", "field %q does not allow multiple values", field.Name)
	}
	r.values[index] = append(r.values[index], v)
	return nil
}

// Set replaces all values of the field at index.
func (r *RData) Set(index int, vs []Value) error {
	field, ok := r.def.Field(index)
	if !ok {
		return newError(InvalidFieldDefinition, "rdata set", "field index %d out of range", index)
	}
	if !field.AllowsMultiple && len(vs) != 1 {
		return newError(InvalidFieldDefinition, "rdata set", "field %q requires exactly one value, got %d", field.Name, len(vs))
	}
	for _, v := range vs {
		if v.Kind() != field.Kind {
			return newError(FieldValueOutOfRange, "rdata set", "field %q expects %s, got %s", field.Name, field.Kind, v.Kind())
		}
	}
	r.values[index] = vs
	return nil
}

// SetByName is Set looked up by field name.
func (r *RData) SetByName(name string, vs ...Value) error {
	field, ok := r.def.FieldByName(name)
	if !ok {
		return newError(InvalidFieldDefinition, "rdata set", "unknown field %q", name)
	}
	return r.Set(field.Index, vs)
}

// Values returns the values held at field index, or nil if out of range
// or unset.
func (r *RData) Values(index int) []Value {
	if index < 0 || index >= len(r.values) {
		return nil
	}
	return r.values[index]
}

// ValuesByName is Values looked up by field name.
func (r *RData) ValuesByName(name string) ([]Value, error) {
	field, ok := r.def.FieldByName(name)
	if !ok {
		return nil, newError(InvalidFieldDefinition, "rdata get", "unknown field %q", name)
	}
	return r.Values(field.Index), nil
}

// Validate checks every field's arity minimum has been met. The encoder
// calls this before emitting a record; the decoder does not call it and
// checks field arity itself while decoding RDATA.
func (r *RData) Validate() error {
	for _, f := range r.def.Fields() {
		n := uint32(len(r.values[f.Index]))
		if f.AllowsMultiple {
			if n < f.Minimum {
				return newError(RdataLengthMismatch, "rdata validate", "field %q needs at least %d values, has %d", f.Name, f.Minimum, n)
			}
		} else if n != 1 {
			return newError(RdataLengthMismatch, "rdata validate", "field %q needs exactly one value, has %d", f.Name, n)
		}
	}
	return nil
}

// String renders the RData via its TypeDef's Stringer.
func (r *RData) String() string { return r.def.String(r) }

package dns

import "strings"

// Stringer renders a RData for a particular RR type: an optional function
// value attached to a TypeDef, used in place of a default field-by-field
// rendering.
type Stringer func(*RData) string

// TypeDef is an ordered, immutable sequence of FieldDefs describing one
// RR type's RDATA layout. TypeDefs are meant to be interned once per RR
// type code and shared read-only across messages.
type TypeDef struct {
	fields    []FieldDef
	byName    map[string]int
	stringer  Stringer
}

// TypeDefOption configures a TypeDef at construction time.
type TypeDefOption func(*TypeDef)

// WithStringer attaches a custom Stringer to the TypeDef being built.
func WithStringer(fn Stringer) TypeDefOption {
	return func(t *TypeDef) { t.stringer = fn }
}

// NewTypeDef parses decls in order and builds a TypeDef. A quantifier
// suffix is only accepted on the final declaration; field names must be
// unique after lowercasing. Both violations fail with
// InvalidFieldDefinition.
func NewTypeDef(decls []FieldDecl, opts ...TypeDefOption) (*TypeDef, error) {
	fields := make([]FieldDef, 0, len(decls))
	byName := make(map[string]int, len(decls))

	for i, d := range decls {
		isLast := i == len(decls)-1
		name, allowsMultiple, minimum, err := parseFieldDecl(d.Name, isLast)
		if err != nil {
			return nil, err
		}
		if _, dup := byName[name]; dup {
			return nil, newError(InvalidFieldDefinition, "new type-def", "duplicate field name %q", name)
		}
		byName[name] = i
		fields = append(fields, FieldDef{
			Index:          i,
			Name:           name,
			Kind:           d.Kind,
			AllowsMultiple: allowsMultiple,
			Minimum:        minimum,
		})
	}

	t := &TypeDef{fields: fields, byName: byName}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Len returns the number of fields in the definition.
func (t *TypeDef) Len() int { return len(t.fields) }

// Fields returns the ordered field definitions. The returned slice must
// not be mutated by callers.
func (t *TypeDef) Fields() []FieldDef { return t.fields }

// Field returns the field definition at index, and false if out of range.
func (t *TypeDef) Field(index int) (FieldDef, bool) {
	if index < 0 || index >= len(t.fields) {
		return FieldDef{}, false
	}
	return t.fields[index], true
}

// FieldByName looks up a field definition by its (case-insensitive) name.
func (t *TypeDef) FieldByName(name string) (FieldDef, bool) {
	idx, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return FieldDef{}, false
	}
	return t.fields[idx], true
}

// String renders data using the definition's Stringer, or the default
// rendering (each field's values, space-joined) if none was attached.
func (t *TypeDef) String(data *RData) string {
	if t.stringer != nil {
		return t.stringer(data)
	}
	var parts []string
	for _, f := range t.fields {
		for _, v := range data.Values(f.Index) {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, " ")
}

// rawTypeDef is used for RR types absent from the caller's TypeRegistry:
// they decode as a single Anything value spanning the whole RDLENGTH.
var rawTypeDef = mustTypeDef([]FieldDecl{{Name: "rdata", Kind: KindAnything}})

func mustTypeDef(decls []FieldDecl, opts ...TypeDefOption) *TypeDef {
	t, err := NewTypeDef(decls, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

package dns

import (
	"regexp"
	"strconv"
	"strings"
)

var fieldNamePattern = regexp.MustCompile(`^[\w-]+$`)

// FieldDef describes one named, typed, optionally repeating slot in a
// TypeDef's RDATA layout.
type FieldDef struct {
	Index          int
	Name           string
	Kind           ValueKind
	AllowsMultiple bool
	Minimum        uint32
}

// FieldDecl is one entry of a TypeDef declaration: a field name
// (optionally carrying a trailing "+"/"+N"/"*"/"*N" quantifier) and the
// primitive kind its values hold.
type FieldDecl struct {
	Name string
	Kind ValueKind
}

var quantifierPattern = regexp.MustCompile(`^([\w-]+?)([+*])(\d+)?$`)

// parseFieldDecl splits a raw declaration name into its bare, lowercased
// name plus arity. A quantifier is legal only on the final field: "+N"
// requires at least N values (default 1), "*N" requires at least N
// values (default 0), and a bare name requires exactly one value.
func parseFieldDecl(raw string, isLast bool) (name string, allowsMultiple bool, minimum uint32, err error) {
	if m := quantifierPattern.FindStringSubmatch(raw); m != nil {
		if !isLast {
			return "", false, 0, newError(InvalidFieldDefinition, "parse field", "quantifier on non-final field %q", raw)
		}
		name = strings.ToLower(m[1])
		if !fieldNamePattern.MatchString(name) {
			return "", false, 0, newError(InvalidFieldDefinition, "parse field", "invalid field name %q", raw)
		}
		allowsMultiple = true
		if m[3] != "" {
			n, convErr := strconv.ParseUint(m[3], 10, 32)
			if convErr != nil {
				return "", false, 0, newError(InvalidFieldDefinition, "parse field", "bad quantifier count in %q", raw)
			}
			minimum = uint32(n)
		} else if m[2] == "+" {
			minimum = 1
		} else {
			minimum = 0
		}
		return name, allowsMultiple, minimum, nil
	}

	name = strings.ToLower(raw)
	if !fieldNamePattern.MatchString(name) {
		return "", false, 0, newError(InvalidFieldDefinition, "parse field", "invalid field name %q", raw)
	}
	return name, false, 1, nil
}

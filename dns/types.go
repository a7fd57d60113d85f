package dns

// RR type codes per RFC 1035 §3.2.2 and RFC 3596, used as keys into a
// TypeRegistry and as the Type field of a ResourceRecord.
const (
	TypeA     uint16 = 1
	TypeNS    uint16 = 2
	TypeCNAME uint16 = 5
	TypeSOA   uint16 = 6
	TypePTR   uint16 = 12
	TypeMX    uint16 = 15
	TypeTXT   uint16 = 16
	TypeAAAA  uint16 = 28
	TypeOPT   uint16 = 41
)

// TypeRegistry maps an RR type code to the TypeDef describing its RDATA
// layout. Callers build one and pass it to Decode; on the encode side
// the registry lives implicitly in whichever TypeDef was used to build
// each record's RData.
type TypeRegistry struct {
	defs map[uint16]*TypeDef
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{defs: make(map[uint16]*TypeDef)}
}

// Register associates rrtype with def, replacing any prior definition.
func (t *TypeRegistry) Register(rrtype uint16, def *TypeDef) {
	t.defs[rrtype] = def
}

// Lookup returns the TypeDef registered for rrtype, if any.
func (t *TypeRegistry) Lookup(rrtype uint16) (*TypeDef, bool) {
	d, ok := t.defs[rrtype]
	return d, ok
}

// DefaultTypeRegistry returns a registry pre-populated with the RR types
// a typical resolver or zone needs day to day: A, NS, CNAME, SOA, PTR,
// MX, TXT, AAAA. OPT is registered as opaque Anything RDATA: EDNS(0)'s
// pseudo-RR carries its own option encoding that this package passes
// through untouched, leaving payload-size renegotiation to the caller.
func DefaultTypeRegistry() *TypeRegistry {
	r := NewTypeRegistry()

	r.Register(TypeA, mustTypeDef([]FieldDecl{
		{Name: "address", Kind: KindIPv4Address},
	}))
	r.Register(TypeNS, mustTypeDef([]FieldDecl{
		{Name: "nsdname", Kind: KindDomainName},
	}))
	r.Register(TypeCNAME, mustTypeDef([]FieldDecl{
		{Name: "cname", Kind: KindDomainName},
	}))
	r.Register(TypeSOA, mustTypeDef([]FieldDecl{
		{Name: "mname", Kind: KindDomainName},
		{Name: "rname", Kind: KindDomainName},
		{Name: "serial", Kind: KindLong},
		{Name: "refresh", Kind: KindLong},
		{Name: "retry", Kind: KindLong},
		{Name: "expire", Kind: KindLong},
		{Name: "minimum", Kind: KindLong},
	}))
	r.Register(TypePTR, mustTypeDef([]FieldDecl{
		{Name: "ptrdname", Kind: KindDomainName},
	}))
	r.Register(TypeMX, mustTypeDef([]FieldDecl{
		{Name: "preference", Kind: KindShort},
		{Name: "exchange", Kind: KindDomainName},
	}))
	r.Register(TypeTXT, mustTypeDef([]FieldDecl{
		{Name: "txt+", Kind: KindCharacterString},
	}))
	r.Register(TypeAAAA, mustTypeDef([]FieldDecl{
		{Name: "address", Kind: KindIPv6Address},
	}))
	r.Register(TypeOPT, mustTypeDef([]FieldDecl{
		{Name: "options", Kind: KindAnything},
	}))

	return r
}

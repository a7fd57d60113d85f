package dns

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ValueKind tags the concrete type held by a Value: a switch over
// ValueKind is exhaustive and can be checked with go vet's
// exhaustive-style linting, unlike a chain of type assertions.
type ValueKind uint8

// ValueKind values, one per RDATA field type RFC1035 defines across its
// master file format (section 5.1) and its wire RR encodings.
const (
	KindAnything ValueKind = iota
	KindBitMap
	KindChar
	KindCharacterString
	KindLong
	KindShort
	KindIPv4Address
	KindIPv6Address
	KindDomainName
)

var valueKindNames = [...]string{
	"Anything", "BitMap", "Char", "CharacterString", "Long", "Short",
	"IPv4Address", "IPv6Address", "DomainName",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "Unknown"
}

// Value is implemented by every primitive field value. Each holds one
// validated piece of wire data and exposes both a natural-shape accessor
// and a string rendering.
type Value interface {
	Kind() ValueKind
	String() string
}

// CharValue is an unsigned 8 bit integer.
type CharValue struct{ v uint8 }

// NewChar validates v is in [0,255] and returns a CharValue.
func NewChar(v int) (*CharValue, error) {
	if v < 0 || v > 255 {
		return nil, newError(FieldValueOutOfRange, "new char", "value %d out of range [0,255]", v)
	}
	return &CharValue{uint8(v)}, nil
}

func (c *CharValue) Kind() ValueKind { return KindChar }
func (c *CharValue) Value() uint8    { return c.v }
func (c *CharValue) String() string  { return strconv.Itoa(int(c.v)) }

// ShortValue is an unsigned 16 bit integer.
type ShortValue struct{ v uint16 }

// NewShort validates v is in [0,65535] and returns a ShortValue.
func NewShort(v int) (*ShortValue, error) {
	if v < 0 || v > 65535 {
		return nil, newError(FieldValueOutOfRange, "new short", "value %d out of range [0,65535]", v)
	}
	return &ShortValue{uint16(v)}, nil
}

func (s *ShortValue) Kind() ValueKind { return KindShort }
func (s *ShortValue) Value() uint16   { return s.v }
func (s *ShortValue) String() string  { return strconv.Itoa(int(s.v)) }

// LongValue is an unsigned 32 bit integer.
type LongValue struct{ v uint32 }

// NewLong validates v is in [0,2^32-1] and returns a LongValue.
func NewLong(v int64) (*LongValue, error) {
	if v < 0 || v > 0xffffffff {
		return nil, newError(FieldValueOutOfRange, "new long", "value %d out of range [0,2^32-1]", v)
	}
	return &LongValue{uint32(v)}, nil
}

func (l *LongValue) Kind() ValueKind { return KindLong }
func (l *LongValue) Value() uint32   { return l.v }
func (l *LongValue) String() string  { return strconv.FormatUint(uint64(l.v), 10) }

// RFC1035, section 3.3:
//
// <character-string> is a single length octet followed by that number of
// characters. <character-string> is treated as binary information, and
// can be up to 256 characters in length (including the length octet).
type CharacterStringValue struct{ v []byte }

// NewCharacterString validates len(b) <= 255 and returns a
// CharacterStringValue holding a copy of b.
func NewCharacterString(b []byte) (*CharacterStringValue, error) {
	if len(b) > 255 {
		return nil, newError(FieldValueOutOfRange, "new character-string", "length %d exceeds 255 octets", len(b))
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return &CharacterStringValue{cp}, nil
}

func (c *CharacterStringValue) Kind() ValueKind { return KindCharacterString }
func (c *CharacterStringValue) Value() []byte   { return c.v }
func (c *CharacterStringValue) String() string  { return string(c.v) }

// AnythingValue is an opaque byte string used to pass RDATA through
// untouched, for RR types this package does not interpret field by field.
type AnythingValue struct{ v []byte }

// NewAnything returns an AnythingValue holding a copy of b.
func NewAnything(b []byte) *AnythingValue {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &AnythingValue{cp}
}

func (a *AnythingValue) Kind() ValueKind { return KindAnything }
func (a *AnythingValue) Value() []byte   { return a.v }
func (a *AnythingValue) String() string  { return fmt.Sprintf("% x", a.v) }

// BitMapValue is an opaque byte string interpreted as a bit array, as used
// by RFC1035 WKS records and their RFC2065/RFC3845 successors' type
// bitmaps. It keeps its wire-order byte vector alongside a bitset.BitSet
// so callers can do membership tests and set operations on it without
// re-parsing the bytes on every call.
type BitMapValue struct {
	raw []byte
	set *bitset.BitSet
}

// NewBitMap builds a BitMapValue from the raw wire bytes of a bit array,
// most-significant-bit-first within each byte (the DNS NSEC/WKS
// convention).
func NewBitMap(raw []byte) *BitMapValue {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	set := bitset.New(uint(len(raw)) * 8)
	for byteIdx, b := range raw {
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>uint(bit)) != 0 {
				set.Set(uint(byteIdx*8 + bit))
			}
		}
	}
	return &BitMapValue{raw: cp, set: set}
}

func (b *BitMapValue) Kind() ValueKind { return KindBitMap }

// Value returns the wire-order byte vector backing this bit array.
func (b *BitMapValue) Value() []byte { return b.raw }

// Test reports whether bit i is set.
func (b *BitMapValue) Test(i uint) bool { return b.set.Test(i) }

func (b *BitMapValue) String() string { return fmt.Sprintf("% x", b.raw) }

// IPv4AddressValue holds a 4 octet IPv4 address.
type IPv4AddressValue struct{ v [4]byte }

// NewIPv4Address accepts a dotted-quad string, 4 raw octets, or a packed
// big-endian uint32.
func NewIPv4Address(in interface{}) (*IPv4AddressValue, error) {
	switch t := in.(type) {
	case string:
		ip := net.ParseIP(t)
		if ip == nil {
			return nil, newError(FieldValueOutOfRange, "new ipv4-address", "invalid address %q", t)
		}
		v4 := ip.To4()
		if v4 == nil {
			return nil, newError(FieldValueOutOfRange, "new ipv4-address", "%q is not an IPv4 address", t)
		}
		var out [4]byte
		copy(out[:], v4)
		return &IPv4AddressValue{out}, nil
	case [4]byte:
		return &IPv4AddressValue{t}, nil
	case []byte:
		if len(t) != 4 {
			return nil, newError(FieldValueOutOfRange, "new ipv4-address", "expected 4 octets, got %d", len(t))
		}
		var out [4]byte
		copy(out[:], t)
		return &IPv4AddressValue{out}, nil
	case uint32:
		return &IPv4AddressValue{[4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}}, nil
	default:
		return nil, newError(FieldValueOutOfRange, "new ipv4-address", "unsupported input type %T", in)
	}
}

func (a *IPv4AddressValue) Kind() ValueKind { return KindIPv4Address }
func (a *IPv4AddressValue) Value() [4]byte  { return a.v }
func (a *IPv4AddressValue) String() string  { return net.IP(a.v[:]).String() }

// IPv6AddressValue holds an IPv6 address as 8 sixteen-bit groups.
type IPv6AddressValue struct{ v [8]uint16 }

// NewIPv6Address accepts 8 shorts or an RFC 4291 textual form, including a
// single "::" zero-compression run.
func NewIPv6Address(in interface{}) (*IPv6AddressValue, error) {
	switch t := in.(type) {
	case string:
		if !strings.Contains(t, ":") {
			return nil, newError(FieldValueOutOfRange, "new ipv6-address", "invalid address %q", t)
		}
		ip := net.ParseIP(t)
		if ip == nil {
			return nil, newError(FieldValueOutOfRange, "new ipv6-address", "invalid address %q", t)
		}
		v6 := ip.To16()
		var out [8]uint16
		for i := 0; i < 8; i++ {
			out[i] = uint16(v6[i*2])<<8 | uint16(v6[i*2+1])
		}
		return &IPv6AddressValue{out}, nil
	case [8]uint16:
		return &IPv6AddressValue{t}, nil
	default:
		return nil, newError(FieldValueOutOfRange, "new ipv6-address", "unsupported input type %T", in)
	}
}

func (a *IPv6AddressValue) Kind() ValueKind { return KindIPv6Address }
func (a *IPv6AddressValue) Value() [8]uint16 { return a.v }

func (a *IPv6AddressValue) String() string {
	buf := make([]byte, 16)
	for i, g := range a.v {
		buf[i*2] = byte(g >> 8)
		buf[i*2+1] = byte(g)
	}
	return net.IP(buf).String()
}

// DomainNameValue is an ordered sequence of labels. Equality and lookups
// are case-insensitive; the string rendering is the dot-joined labels
// followed by a trailing dot. Whether the input had a trailing dot is not
// recorded, so every name renders in fully-qualified form.
type DomainNameValue struct {
	labels []string
}

const maxLabelLength = 63
const maxNameWireLength = 255

// NewDomainName accepts a dot-separated string (a trailing empty label,
// i.e. a trailing dot, is permitted) or an explicit label list.
func NewDomainName(in interface{}) (*DomainNameValue, error) {
	var labels []string
	switch t := in.(type) {
	case string:
		if t == "" || t == "." {
			labels = nil
		} else {
			parts := strings.Split(t, ".")
			if parts[len(parts)-1] == "" {
				parts = parts[:len(parts)-1]
			}
			labels = parts
		}
	case []string:
		labels = append([]string(nil), t...)
	default:
		return nil, newError(FieldValueOutOfRange, "new domain-name", "unsupported input type %T", in)
	}

	wireLen := 1 // terminating zero label
	for _, l := range labels {
		if len(l) == 0 {
			return nil, newError(FieldValueOutOfRange, "new domain-name", "empty label in %q", in)
		}
		if len(l) > maxLabelLength {
			return nil, newError(FieldValueOutOfRange, "new domain-name", "label %q exceeds %d bytes", l, maxLabelLength)
		}
		wireLen += len(l) + 1
	}
	if wireLen > maxNameWireLength {
		return nil, newError(FieldValueOutOfRange, "new domain-name", "wire length %d exceeds %d bytes", wireLen, maxNameWireLength)
	}

	return &DomainNameValue{labels: labels}, nil
}

func (d *DomainNameValue) Kind() ValueKind { return KindDomainName }

// Labels returns the name's labels, head to tail.
func (d *DomainNameValue) Labels() []string { return d.labels }

// WireLength is the number of bytes this name occupies on the wire before
// any compression: length bytes, label bytes, and the terminator.
func (d *DomainNameValue) WireLength() int {
	n := 1
	for _, l := range d.labels {
		n += len(l) + 1
	}
	return n
}

// Equal compares names case-insensitively, label by label.
func (d *DomainNameValue) Equal(o *DomainNameValue) bool {
	if o == nil || len(d.labels) != len(o.labels) {
		return false
	}
	for i := range d.labels {
		if !strings.EqualFold(d.labels[i], o.labels[i]) {
			return false
		}
	}
	return true
}

func (d *DomainNameValue) String() string {
	if len(d.labels) == 0 {
		return "."
	}
	return strings.Join(d.labels, ".") + "."
}

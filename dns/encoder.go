package dns

import (
	"encoding/binary"
	"strings"
)

// Encode serializes msg into wire format using the default 512-byte
// budget. Set compress to false to disable name compression; names are
// then emitted as literal label sequences.
func Encode(msg *Message, compress bool) ([]byte, error) {
	return EncodeWithMaxSize(msg, compress, defaultMaxSize)
}

// EncodeWithMaxSize is Encode with a caller-supplied size budget, for
// callers that have negotiated a larger size than the default 512 bytes
// with EDNS(0).
func EncodeWithMaxSize(msg *Message, compress bool, maxSize int) ([]byte, error) {
	ctx := NewEncodingContext(compress, maxSize)

	var qd, an, ns, ar uint16

	for _, q := range msg.Questions {
		if ctx.Truncated() {
			break
		}
		ok, err := encodeQuestion(ctx, q)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		qd++
	}

	for _, rr := range msg.Answers {
		if ctx.Truncated() {
			break
		}
		ok, err := encodeResourceRecord(ctx, rr)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		an++
	}

	for _, rr := range msg.Authority {
		if ctx.Truncated() {
			break
		}
		ok, err := encodeResourceRecord(ctx, rr)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		ns++
	}

	for _, rr := range msg.Additional {
		if ctx.Truncated() {
			break
		}
		ok, err := encodeResourceRecord(ctx, rr)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		ar++
	}

	header := encodeHeader(msg, qd, an, ns, ar, ctx.Truncated())
	out := make([]byte, 0, len(header)+ctx.Packet.Length())
	out = append(out, header...)
	out = append(out, ctx.Packet.Bytes()...)
	return out, nil
}

// encodeQuestion stages a question's bytes, checks the budget, and
// commits only if it fits.
func encodeQuestion(ctx *EncodingContext, q Question) (bool, error) {
	start := ctx.Packet.Length() + headerSize
	nameBytes, err := encodeName(ctx, q.Name, start)
	if err != nil {
		return false, err
	}

	total := headerSize + ctx.Packet.Length() + len(nameBytes) + 4
	if total > ctx.MaxSize {
		ctx.SetTruncated()
		return false, nil
	}

	ctx.Packet.Write(nameBytes)
	tail := make([]byte, 4)
	binary.BigEndian.PutUint16(tail[0:2], q.Type)
	binary.BigEndian.PutUint16(tail[2:4], q.Class)
	ctx.Packet.Write(tail)
	return true, nil
}

// encodeResourceRecord stages a record's bytes, checks the budget, and
// commits only if it fits.
func encodeResourceRecord(ctx *EncodingContext, rr ResourceRecord) (bool, error) {
	if err := rr.RData.Validate(); err != nil {
		return false, err
	}

	start := ctx.Packet.Length() + headerSize
	nameBytes, err := encodeName(ctx, rr.Name, start)
	if err != nil {
		return false, err
	}

	rdataStart := start + len(nameBytes) + 10
	rdataBytes, err := encodeRData(ctx, rr.RData, rdataStart)
	if err != nil {
		return false, err
	}

	total := headerSize + ctx.Packet.Length() + len(nameBytes) + 10 + len(rdataBytes)
	if total > ctx.MaxSize {
		ctx.SetTruncated()
		return false, nil
	}

	ctx.Packet.Write(nameBytes)
	meta := make([]byte, 10)
	binary.BigEndian.PutUint16(meta[0:2], rr.Type)
	binary.BigEndian.PutUint16(meta[2:4], rr.Class)
	binary.BigEndian.PutUint32(meta[4:8], rr.TTL)
	binary.BigEndian.PutUint16(meta[8:10], uint16(len(rdataBytes)))
	ctx.Packet.Write(meta)
	ctx.Packet.Write(rdataBytes)
	return true, nil
}

// encodeRData walks def's fields in order, encoding every value of every
// field (all values of a trailing variadic field, concatenated).
func encodeRData(ctx *EncodingContext, data *RData, start int) ([]byte, error) {
	def := data.TypeDef()
	var out []byte
	pos := start
	for _, field := range def.Fields() {
		for _, v := range data.Values(field.Index) {
			b, err := encodeFieldValue(ctx, v, pos)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
			pos += len(b)
		}
	}
	return out, nil
}

// encodeFieldValue is the type-dispatched field encoder.
func encodeFieldValue(ctx *EncodingContext, v Value, pos int) ([]byte, error) {
	switch v.Kind() {
	case KindChar:
		return []byte{v.(*CharValue).Value()}, nil
	case KindShort:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, v.(*ShortValue).Value())
		return b, nil
	case KindLong:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, v.(*LongValue).Value())
		return b, nil
	case KindCharacterString:
		raw := v.(*CharacterStringValue).Value()
		out := make([]byte, 0, len(raw)+1)
		out = append(out, byte(len(raw)))
		out = append(out, raw...)
		return out, nil
	case KindAnything:
		return v.(*AnythingValue).Value(), nil
	case KindBitMap:
		return v.(*BitMapValue).Value(), nil
	case KindIPv4Address:
		arr := v.(*IPv4AddressValue).Value()
		return arr[:], nil
	case KindIPv6Address:
		groups := v.(*IPv6AddressValue).Value()
		b := make([]byte, 16)
		for i, g := range groups {
			binary.BigEndian.PutUint16(b[i*2:i*2+2], g)
		}
		return b, nil
	case KindDomainName:
		return encodeName(ctx, v.(*DomainNameValue), pos)
	default:
		return nil, newError(UnknownTypeKind, "encode field", "no encoder for kind %s", v.Kind())
	}
}

// encodeName is the compression-aware domain name encoder, applying the
// message compression scheme of RFC1035 section 4.1.4. start is the
// absolute byte offset this name's first byte will occupy once (if) the
// record it belongs to is committed to the packet.
func encodeName(ctx *EncodingContext, name *DomainNameValue, start int) ([]byte, error) {
	labels := name.Labels()
	var out []byte
	pos := start

	for i := 0; i <= len(labels); i++ {
		if i == len(labels) {
			out = append(out, 0x00)
			break
		}

		suffix := strings.Join(labels[i:], ".")
		if ctx.Compress {
			if off, ok := ctx.Registry.LookupOffset(suffix); ok {
				ptr := uint16(0xC000 | uint16(off))
				out = append(out, byte(ptr>>8), byte(ptr))
				return out, nil
			}
			ctx.Registry.Register(suffix, pos)
		}

		label := labels[i]
		out = append(out, byte(len(label)))
		out = append(out, []byte(label)...)
		pos += len(label) + 1
	}

	return out, nil
}

// encodeHeader packs the 12-byte header with final section counts and
// flags, per the bit layout of RFC1035 section 4.1.1.
func encodeHeader(msg *Message, qd, an, ns, ar uint16, truncated bool) []byte {
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint16(b[0:2], msg.ID)

	var meta uint16
	if msg.IsResponse {
		meta |= 1 << 15
	}
	meta |= uint16(msg.Opcode&0x0f) << 11
	if msg.Authoritative {
		meta |= 1 << 10
	}
	if truncated {
		meta |= 1 << 9
	}
	if msg.RecursionDesired {
		meta |= 1 << 8
	}
	if msg.RecursionAvailable {
		meta |= 1 << 7
	}
	meta |= uint16(msg.ResponseCode & 0x0f)
	binary.BigEndian.PutUint16(b[2:4], meta)

	binary.BigEndian.PutUint16(b[4:6], qd)
	binary.BigEndian.PutUint16(b[6:8], an)
	binary.BigEndian.PutUint16(b[8:10], ns)
	binary.BigEndian.PutUint16(b[10:12], ar)
	return b
}

package dns

import "encoding/binary"

// Decode parses wire-format bytes into a Message. types supplies the RR
// type registry used to interpret each record's RDATA; an RR type absent
// from it decodes as a single Anything of length rdlength.
func Decode(data []byte, types *TypeRegistry) (*Message, error) {
	if len(data) < headerSize {
		return nil, newError(ShortRead, "decode message", "packet length %d shorter than header", len(data))
	}

	id := binary.BigEndian.Uint16(data[0:2])
	meta := binary.BigEndian.Uint16(data[2:4])
	qd := binary.BigEndian.Uint16(data[4:6])
	an := binary.BigEndian.Uint16(data[6:8])
	ns := binary.BigEndian.Uint16(data[8:10])
	ar := binary.BigEndian.Uint16(data[10:12])

	msg := &Message{
		ID:                 id,
		IsResponse:         meta&(1<<15) != 0,
		Opcode:             uint8((meta >> 11) & 0x0f),
		Authoritative:      meta&(1<<10) != 0,
		Truncated:          meta&(1<<9) != 0,
		RecursionDesired:   meta&(1<<8) != 0,
		RecursionAvailable: meta&(1<<7) != 0,
		ResponseCode:       uint8(meta & 0x0f),
	}

	dctx := NewDecodingContext(data)
	dctx.pos = headerSize

	for i := 0; i < int(qd); i++ {
		name, err := dctx.ReadName()
		if err != nil {
			return nil, err
		}
		qtype, err := dctx.ReadUint16()
		if err != nil {
			return nil, err
		}
		qclass, err := dctx.ReadUint16()
		if err != nil {
			return nil, err
		}
		msg.Questions = append(msg.Questions, Question{Name: name, Type: qtype, Class: qclass})
	}

	var err error
	if msg.Answers, err = decodeRRs(dctx, types, int(an)); err != nil {
		return nil, err
	}
	if msg.Authority, err = decodeRRs(dctx, types, int(ns)); err != nil {
		return nil, err
	}
	if msg.Additional, err = decodeRRs(dctx, types, int(ar)); err != nil {
		return nil, err
	}

	return msg, nil
}

func decodeRRs(dctx *DecodingContext, types *TypeRegistry, count int) ([]ResourceRecord, error) {
	rrs := make([]ResourceRecord, 0, count)
	for i := 0; i < count; i++ {
		rr, err := decodeResourceRecord(dctx, types)
		if err != nil {
			return nil, err
		}
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

// decodeResourceRecord reads one RR in the fixed order RFC1035 section
// 4.1.3 lays out: name, type, class, ttl, rdlength, then rdlength bytes
// of RDATA interpreted per the type definition for type.
func decodeResourceRecord(dctx *DecodingContext, types *TypeRegistry) (ResourceRecord, error) {
	name, err := dctx.ReadName()
	if err != nil {
		return ResourceRecord{}, err
	}
	rtype, err := dctx.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	rclass, err := dctx.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	ttl, err := dctx.ReadUint32()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdlength, err := dctx.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}

	rdataStart := dctx.pos
	if rdataStart+int(rdlength) > dctx.Len() {
		return ResourceRecord{}, newError(ShortRead, "decode rr", "rdlength %d exceeds remaining packet", rdlength)
	}

	def, ok := types.Lookup(rtype)
	if !ok {
		def = rawTypeDef
	}

	data, err := decodeRData(dctx, def, rdataStart, int(rdlength))
	if err != nil {
		return ResourceRecord{}, err
	}

	return ResourceRecord{Name: name, Type: rtype, Class: rclass, TTL: ttl, RData: data}, nil
}

// decodeRData decodes def's fields in order from [start, start+length).
// A trailing variadic field consumes whatever bytes remain, respecting
// its declared minimum count; a field count that does not exactly
// exhaust the declared length fails with RdataLengthMismatch.
func decodeRData(dctx *DecodingContext, def *TypeDef, start, length int) (*RData, error) {
	end := start + length
	data := NewRData(def)

	for _, field := range def.Fields() {
		if field.AllowsMultiple {
			count := 0
			for dctx.pos < end {
				v, err := decodeFieldValue(dctx, field.Kind, end)
				if err != nil {
					return nil, err
				}
				if err := data.Append(field.Index, v); err != nil {
					return nil, err
				}
				count++
			}
			if uint32(count) < field.Minimum {
				return nil, newError(RdataLengthMismatch, "decode rdata", "field %q needs at least %d values, got %d", field.Name, field.Minimum, count)
			}
			continue
		}

		v, err := decodeFieldValue(dctx, field.Kind, end)
		if err != nil {
			return nil, err
		}
		if err := data.Append(field.Index, v); err != nil {
			return nil, err
		}
	}

	if dctx.pos != end {
		return nil, newError(RdataLengthMismatch, "decode rdata", "consumed %d bytes, rdlength declared %d", dctx.pos-start, length)
	}
	return data, nil
}

// decodeFieldValue is the type-dispatched field decoder. rdataEnd bounds
// Anything and BitMap fields, which have no self-describing length on
// the wire and so consume whatever remains of the RDATA.
func decodeFieldValue(dctx *DecodingContext, kind ValueKind, rdataEnd int) (Value, error) {
	switch kind {
	case KindChar:
		b, err := dctx.ReadUint8()
		if err != nil {
			return nil, err
		}
		return NewChar(int(b))
	case KindShort:
		n, err := dctx.ReadUint16()
		if err != nil {
			return nil, err
		}
		return NewShort(int(n))
	case KindLong:
		n, err := dctx.ReadUint32()
		if err != nil {
			return nil, err
		}
		return NewLong(int64(n))
	case KindCharacterString:
		l, err := dctx.ReadUint8()
		if err != nil {
			return nil, err
		}
		b, err := dctx.ReadBytes(int(l))
		if err != nil {
			return nil, err
		}
		return NewCharacterString(b)
	case KindAnything:
		n := rdataEnd - dctx.pos
		if n < 0 {
			return nil, newError(RdataLengthMismatch, "decode field", "anything field overruns rdata")
		}
		b, err := dctx.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		return NewAnything(b), nil
	case KindBitMap:
		n := rdataEnd - dctx.pos
		if n < 0 {
			return nil, newError(RdataLengthMismatch, "decode field", "bitmap field overruns rdata")
		}
		b, err := dctx.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		return NewBitMap(b), nil
	case KindIPv4Address:
		b, err := dctx.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		return NewIPv4Address(append([]byte(nil), b...))
	case KindIPv6Address:
		b, err := dctx.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		var groups [8]uint16
		for i := 0; i < 8; i++ {
			groups[i] = binary.BigEndian.Uint16(b[i*2 : i*2+2])
		}
		return NewIPv6Address(groups)
	case KindDomainName:
		return dctx.ReadName()
	default:
		return nil, newError(UnknownTypeKind, "decode field", "no decoder for kind %s", kind)
	}
}

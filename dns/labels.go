package dns

import "strings"

// maxPointerOffset is the largest offset a 14-bit compression pointer can
// address, per RFC1035 section 4.1.4: "the pointer takes the form of a
// two octet sequence... the first two bits are ones". Offsets at or
// beyond this must never be handed back by LookupOffset: the encoder may
// still register such an offset (it does, eagerly), but a lookup that
// returned it would produce an illegal pointer.
const maxPointerOffset = 1 << 14

// LabelRegistry is the bidirectional suffix<->offset map backing name
// compression: one packet's worth of "where did I first see this name
// suffix" bookkeeping, used by the encoder to emit compression pointers
// and, for debugging only, by the decoder to resolve an offset back to
// the suffix first seen there.
type LabelRegistry struct {
	suffixToOffset map[string]int
	offsetToSuffix map[int]string
}

// NewLabelRegistry returns an empty registry. Registries are single-use:
// create one per packet.
func NewLabelRegistry() *LabelRegistry {
	return &LabelRegistry{
		suffixToOffset: make(map[string]int),
		offsetToSuffix: make(map[int]string),
	}
}

func normalizeSuffix(suffix string) string { return strings.ToLower(suffix) }

// Register records that suffix first appeared at offset. It is
// idempotent and first-write-wins: a suffix already registered keeps its
// earliest offset, which keeps compression pointers monotone.
func (r *LabelRegistry) Register(suffix string, offset int) {
	key := normalizeSuffix(suffix)
	if _, ok := r.suffixToOffset[key]; ok {
		return
	}
	r.suffixToOffset[key] = offset
	if _, ok := r.offsetToSuffix[offset]; !ok {
		r.offsetToSuffix[offset] = key
	}
}

// LookupOffset returns the earliest offset registered for suffix. Offsets
// at or beyond maxPointerOffset are treated as a cache miss: returning
// them would produce a pointer that cannot be represented in 14 bits.
func (r *LabelRegistry) LookupOffset(suffix string) (int, bool) {
	off, ok := r.suffixToOffset[normalizeSuffix(suffix)]
	if !ok || off >= maxPointerOffset {
		return 0, false
	}
	return off, true
}

// LookupSuffix is the reverse lookup, used only to synthesize
// human-readable trace output; it is not required for decode correctness.
func (r *LabelRegistry) LookupSuffix(offset int) (string, bool) {
	s, ok := r.offsetToSuffix[offset]
	return s, ok
}

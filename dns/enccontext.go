package dns

// headerSize is the fixed 12-byte DNS message header described by
// RFC1035 section 4.1.1.
const headerSize = 12

// defaultMaxSize is the default message size RFC1035 section 2.3.4
// imposes on UDP messages ("Messages carried by UDP are restricted to
// 512 bytes"), inclusive of the header. It is parameterizable via
// EncodeWithMaxSize for callers that have negotiated a larger size with
// EDNS(0).
const defaultMaxSize = 512

// EncodingContext bundles the packet under construction with its label
// registry and the sticky truncation flag. Encoding contexts are
// single-owner and single-use: create one per Encode call.
type EncodingContext struct {
	Packet    *Packet
	Registry  *LabelRegistry
	Compress  bool
	MaxSize   int
	truncated bool
}

// NewEncodingContext returns a fresh context for one encode operation.
func NewEncodingContext(compress bool, maxSize int) *EncodingContext {
	return &EncodingContext{
		Packet:   NewPacket(),
		Registry: NewLabelRegistry(),
		Compress: compress,
		MaxSize:  maxSize,
	}
}

// Truncated reports whether the 512-byte (or MaxSize) budget has already
// been exceeded.
func (c *EncodingContext) Truncated() bool { return c.truncated }

// SetTruncated sticks the truncation flag. Once set it never clears for
// the lifetime of this context.
func (c *EncodingContext) SetTruncated() { c.truncated = true }

package dns

import "fmt"

// From RFC1035, section 4.1.2:
//
// The question section is used to carry the "question" in most queries,
// i.e., the parameters that define what is being asked.
type Question struct {
	Name  *DomainNameValue
	Type  uint16
	Class uint16
}

func (q Question) String() string {
	return fmt.Sprintf("%v %d %d", q.Name, q.Type, q.Class)
}

// From RFC1035, section 4.1.3:
//
// The answer, authority, and additional sections all share the same
// format: a variable number of resource records, where the number of
// records is specified in the corresponding count field in the header.
type ResourceRecord struct {
	Name  *DomainNameValue
	Type  uint16
	Class uint16
	TTL   uint32
	RData *RData
}

func (r ResourceRecord) String() string {
	return fmt.Sprintf("%v %d %d %d [%v]", r.Name, r.Type, r.Class, r.TTL, r.RData)
}

// Message is the in-memory object model for one DNS message: a header
// plus the four sections RFC1035 section 4.1.1 defines (question,
// answer, authority, additional).
type Message struct {
	ID                 uint16
	IsResponse         bool
	Opcode             uint8 // 0..15
	Authoritative      bool
	Truncated          bool
	RecursionDesired   bool
	RecursionAvailable bool
	ResponseCode       uint8 // 0..15

	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// NewMessage returns a zero-valued Message with empty sections.
func NewMessage() *Message {
	return &Message{}
}

func (m *Message) String() string {
	return fmt.Sprintf(
		"Message{ID:%d QR:%v Opcode:%d AA:%v TC:%v RD:%v RA:%v RCODE:%d Questions:%v Answers:%v Authority:%v Additional:%v}",
		m.ID, m.IsResponse, m.Opcode, m.Authoritative, m.Truncated, m.RecursionDesired,
		m.RecursionAvailable, m.ResponseCode, m.Questions, m.Answers, m.Authority, m.Additional,
	)
}

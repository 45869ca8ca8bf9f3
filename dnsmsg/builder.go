package dnsmsg

import "encoding/binary"

// maxLabelLen and maxNameLen are the RFC 1035 §3.1 wire limits: a label
// is at most 63 octets (the two top bits of its length octet are
// reserved for compression pointers), and a fully encoded name — labels
// plus length octets plus the terminating zero — is at most 255 octets.
const (
	maxLabelLen = 63
	maxNameLen  = 255
)

// Builder constructs a DNS query message. It never produces compression
// pointers: every name is written as literal labels, which keeps the
// builder simple at the cost of slightly larger output than a
// real resolver would send.
type Builder struct {
	id    uint16
	rd    bool
	buf   []byte
	qd    uint16
	opt   *builderOpt
	erred error
}

type builderOpt struct {
	udpSize  uint16
	extRCode uint8
	version  uint8
	flags    uint16
}

// NewBuilder starts a query message with the given transaction ID and
// recursion-desired flag. The header is reserved immediately; question
// bytes are appended as AddQuestion is called.
func NewBuilder(id uint16, recursionDesired bool) *Builder {
	b := &Builder{id: id, rd: recursionDesired}
	b.buf = make([]byte, headerSize)
	return b
}

// AddQuestion appends one question. name is given as plain dotted text
// (e.g. "www.example.com"); it is split on '.' and each label is
// validated and written literally, uncompressed. An empty string or a
// single "." encodes the root name.
func (b *Builder) AddQuestion(name string, qtype QType, qclass QClass) {
	if b.erred != nil {
		return
	}
	encoded, err := encodeName(name)
	if err != nil {
		b.erred = err
		return
	}

	b.buf = append(b.buf, encoded...)
	var tail [4]byte
	binary.BigEndian.PutUint16(tail[0:2], uint16(qtype))
	binary.BigEndian.PutUint16(tail[2:4], uint16(qclass))
	b.buf = append(b.buf, tail[:]...)
	b.qd++
}

// AddEDNS0 requests an EDNS0 OPT pseudo-record be appended to the
// Additional section on Build, per RFC 6891. Calling it more than once
// replaces the previously requested OPT record.
func (b *Builder) AddEDNS0(udpSize uint16, extRCode, version uint8, flags uint16) {
	b.opt = &builderOpt{udpSize: udpSize, extRCode: extRCode, version: version, flags: flags}
}

// encodeName validates and wire-encodes a dotted name with no
// compression, enforcing the per-label and total-length limits before
// any byte of it is written to the builder's buffer.
func encodeName(name string) ([]byte, error) {
	if name == "" || name == "." {
		return []byte{0}, nil
	}

	var labels [][]byte
	start := 0
	for i := 0; i <= len(name); i++ {
		if i == len(name) || name[i] == '.' {
			if i > start {
				labels = append(labels, []byte(name[start:i]))
			}
			start = i + 1
		}
	}

	total := 1 // terminating zero octet
	for _, l := range labels {
		if len(l) > maxLabelLen {
			return nil, ErrLabelTooLong
		}
		total += 1 + len(l)
	}
	if total > maxNameLen {
		return nil, ErrNameTooLong
	}

	out := make([]byte, 0, total)
	for _, l := range labels {
		out = append(out, byte(len(l)))
		out = append(out, l...)
	}
	out = append(out, 0)
	return out, nil
}

// Build finalizes the message: it patches the section counts into the
// reserved header, appends the EDNS0 OPT record if one was requested
// via AddEDNS0, and returns the complete wire buffer. If any AddQuestion
// call failed, that error is returned here instead.
func (b *Builder) Build() ([]byte, error) {
	if b.erred != nil {
		return nil, b.erred
	}

	arcount := uint16(0)
	if b.opt != nil {
		arcount = 1
		b.buf = append(b.buf, 0) // root name
		var rest [10]byte
		binary.BigEndian.PutUint16(rest[0:2], uint16(OPT))
		binary.BigEndian.PutUint16(rest[2:4], b.opt.udpSize)
		ttl := uint32(b.opt.extRCode)<<24 | uint32(b.opt.version)<<16 | uint32(b.opt.flags)
		binary.BigEndian.PutUint32(rest[4:8], ttl)
		binary.BigEndian.PutUint16(rest[8:10], 0) // rdlength: no options
		b.buf = append(b.buf, rest[:]...)
	}

	hdr := Header{
		ID:               b.id,
		RecursionDesired: b.rd,
		QDCount:          b.qd,
		ARCount:          arcount,
	}
	hdr.putTo(b.buf)
	return b.buf, nil
}

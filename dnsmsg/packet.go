package dnsmsg

// Packet is a fully parsed DNS message (RFC 1035 §4): the header, the
// four sections, and — when present — the EDNS0 OPT pseudo-record
// pulled out of Additional and surfaced as its own field rather than as
// an ordinary ResourceRecord.
type Packet struct {
	Header     Header
	Questions  []Question
	Answer     []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
	// OPT is the EDNS0 pseudo-record, if the message carried one. A
	// message with more than one OPT record in its Additional section
	// is malformed and Parse rejects it with ErrAdditionalOPT.
	OPT *OptRecord
}

// Parse decodes a complete DNS message out of data. All Name and RData
// values in the result borrow from data; the caller must keep data
// alive (or take an owned copy, see DeepClone) for as long as it uses
// the result.
func Parse(data []byte) (*Packet, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	r := newReader(data)
	r.pos = headerSize

	questions := make([]Question, 0, hdr.QDCount)
	for i := uint16(0); i < hdr.QDCount; i++ {
		q, err := r.question()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	answer, err := parseRRSection(r, hdr.ANCount)
	if err != nil {
		return nil, err
	}
	authority, err := parseRRSection(r, hdr.NSCount)
	if err != nil {
		return nil, err
	}
	additional, opt, err := parseAdditionalSection(r, hdr.ARCount)
	if err != nil {
		return nil, err
	}

	return &Packet{
		Header:     hdr,
		Questions:  questions,
		Answer:     answer,
		Authority:  authority,
		Additional: additional,
		OPT:        opt,
	}, nil
}

func parseRRSection(r *reader, count uint16) ([]ResourceRecord, error) {
	rrs := make([]ResourceRecord, 0, count)
	for i := uint16(0); i < count; i++ {
		rr, err := r.resourceRecord()
		if err != nil {
			return nil, err
		}
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

// parseAdditionalSection reads the Additional section, recognizing the
// EDNS0 OPT pseudo-record (root name, TYPE=41) by its head before
// deciding how to interpret the record's CLASS/TTL fields: ordinary
// records get the usual Class/cache-flush-bit treatment, the OPT record
// gets its CLASS/TTL reinterpreted as UDPSize/ExtRCode/Version/Flags.
func parseAdditionalSection(r *reader, count uint16) ([]ResourceRecord, *OptRecord, error) {
	rrs := make([]ResourceRecord, 0, count)
	var opt *OptRecord

	for i := uint16(0); i < count; i++ {
		head, err := r.resourceHead()
		if err != nil {
			return nil, nil, err
		}

		if head.typ == OPT && head.name.IsRoot() {
			rdlen, err := r.uint16()
			if err != nil {
				return nil, nil, err
			}
			rdata, err := r.take(int(rdlen))
			if err != nil {
				return nil, nil, err
			}
			if opt != nil {
				return nil, nil, ErrAdditionalOPT
			}
			o := decodeOpt(head.rawClass, head.ttl, rdata)
			opt = &o
			continue
		}

		_, data, err := r.resourceTail(head.typ)
		if err != nil {
			return nil, nil, err
		}

		flush := head.rawClass&cacheFlushBit != 0
		class, err := ParseClass(head.rawClass &^ cacheFlushBit)
		if err != nil {
			return nil, nil, err
		}

		rrs = append(rrs, ResourceRecord{
			Name:       head.name,
			Type:       head.typ,
			Class:      class,
			CacheFlush: flush,
			TTL:        head.ttl,
			Data:       data,
		})
	}

	return rrs, opt, nil
}

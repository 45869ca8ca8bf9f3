package dnsmsg

// OptRecord is the EDNS0 pseudo-record (RFC 6891) extracted from a
// message's Additional section. It rides on the ordinary resource
// record encoding (root name, TYPE=41) but repurposes the CLASS field
// as the requestor's UDP payload size and the TTL field as extended
// RCODE, version and flags — so it is modeled as a field of Packet
// rather than as an element of Additional, keeping ResourceRecord's
// Class/TTL fields free of conditional interpretation.
type OptRecord struct {
	// UDPSize is the largest UDP payload the sender can reassemble.
	UDPSize uint16
	// ExtRCode is the upper 8 bits of the 12-bit extended RCODE; combine
	// with Header.RCode as ExtRCode<<4 | uint8(Header.RCode) to recover
	// the full extended response code.
	ExtRCode uint8
	Version  uint8
	// Flags is the 16-bit flag word of the OPT TTL; bit 15 is the DO
	// (DNSSEC OK) bit per RFC 3225.
	Flags uint16
	// Data is the raw OPT RDATA: a sequence of (code, length, value)
	// option triples per RFC 6891 §6.1, left undecoded since this
	// library does not interpret individual EDNS0 options.
	Data []byte
}

// doBit is the DNSSEC-OK flag within an OPT record's flags word.
const doBit uint16 = 1 << 15

// DO reports whether the DNSSEC-OK bit is set.
func (o OptRecord) DO() bool {
	return o.Flags&doBit != 0
}

// decodeOpt builds an OptRecord from the raw wire fields of a resource
// record already identified as the EDNS0 pseudo-record.
func decodeOpt(rawClass uint16, ttl uint32, rdata []byte) OptRecord {
	return OptRecord{
		UDPSize:  rawClass,
		ExtRCode: uint8(ttl >> 24),
		Version:  uint8(ttl >> 16),
		Flags:    uint16(ttl),
		Data:     rdata,
	}
}

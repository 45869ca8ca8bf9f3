package dnsmsg

// Type represents a DNS resource record TYPE as defined in RFC 1035 and
// the extensions this library supports. Only the codes the RData
// registry (C5) knows how to fully decode get a named constant beyond
// what is needed for type-code recognition; everything else still
// parses successfully into an Unknown rdata arm.
type Type uint16

// Known resource record types.
const (
	A     Type = 1
	NS    Type = 2
	CNAME Type = 5
	SOA   Type = 6
	PTR   Type = 12
	MX    Type = 15
	TXT   Type = 16
	AAAA  Type = 28 // RFC 3596
	SRV   Type = 33 // RFC 2782
	OPT   Type = 41 // RFC 6891
	CAA   Type = 257
)

var typeNames = map[Type]string{
	A:     "A",
	NS:    "NS",
	CNAME: "CNAME",
	SOA:   "SOA",
	PTR:   "PTR",
	MX:    "MX",
	TXT:   "TXT",
	AAAA:  "AAAA",
	SRV:   "SRV",
	OPT:   "OPT",
	CAA:   "CAA",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "TYPE" + itoa(uint32(t))
}

// ParseType validates a wire TYPE code. TYPE 0 has no assignment under
// RFC 1035 and is always rejected with InvalidCodeError. Every other
// code parses successfully: codes the RData registry (C5) fully
// decodes get a named constant, and everything else (DNSSEC types,
// HTTPS/SVCB, vendor-private ranges) still parses so the record can
// round-trip through the Unknown rdata arm rather than rejecting
// traffic this library simply hasn't special-cased yet.
func ParseType(code uint16) (Type, error) {
	if code == 0 {
		return 0, invalidType(code)
	}
	return Type(code), nil
}

// QType is the request-side superset of Type used in the Question
// section: it adds the wildcard query types AXFR, MAILB, MAILA and ANY.
type QType uint16

// Additional QTYPE-only wildcards (RFC 1035 §3.2.3).
const (
	QTypeAXFR  QType = 252
	QTypeMAILB QType = 253
	QTypeMAILA QType = 254
	QTypeANY   QType = 255
)

var qtypeNames = map[QType]string{
	QType(A):     "A",
	QType(NS):    "NS",
	QType(CNAME): "CNAME",
	QType(SOA):   "SOA",
	QType(PTR):   "PTR",
	QType(MX):    "MX",
	QType(TXT):   "TXT",
	QType(AAAA):  "AAAA",
	QType(SRV):   "SRV",
	QType(OPT):   "OPT",
	QType(CAA):   "CAA",
	QTypeAXFR:    "AXFR",
	QTypeMAILB:   "MAILB",
	QTypeMAILA:   "MAILA",
	QTypeANY:     "ANY",
}

func (t QType) String() string {
	if name, ok := qtypeNames[t]; ok {
		return name
	}
	return "TYPE" + itoa(uint32(t))
}

// ParseQType rejects only code 0 (unassigned); every other code,
// including the QTYPE-only wildcards, parses successfully. Kept
// distinct from ParseType to make the question/answer asymmetry of
// RFC 1035 explicit in the type system.
func ParseQType(code uint16) (QType, error) {
	if code == 0 {
		return 0, invalidQueryType(code)
	}
	return QType(code), nil
}

// itoa avoids pulling in strconv for the String and Error methods that
// render unnamed codes; kept deliberately small.
func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

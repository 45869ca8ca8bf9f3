package dnsmsg

// unicastBit is the top bit of the on-wire QCLASS field, repurposed by
// mDNS (RFC 6762 §5.4) as a "prefer unicast response" flag. It is
// harmless to decode unconditionally: ordinary unicast resolvers never
// set it.
const unicastBit uint16 = 0x8000

// Question is one entry of a message's Question section (RFC 1035
// §4.1.2): the name being asked about, the type and class of the
// records sought, and (for mDNS traffic) whether a unicast response is
// preferred.
type Question struct {
	Name            Name
	QType           QType
	QClass          QClass
	UnicastResponse bool
}

func (r *reader) question() (Question, error) {
	name, err := r.name()
	if err != nil {
		return Question{}, err
	}

	rawType, err := r.uint16()
	if err != nil {
		return Question{}, err
	}
	qtype, err := ParseQType(rawType)
	if err != nil {
		return Question{}, err
	}

	rawClass, err := r.uint16()
	if err != nil {
		return Question{}, err
	}
	unicast := rawClass&unicastBit != 0
	qclass, err := ParseQClass(rawClass &^ unicastBit)
	if err != nil {
		return Question{}, err
	}

	return Question{Name: name, QType: qtype, QClass: qclass, UnicastResponse: unicast}, nil
}

package dnsmsg

// cacheFlushBit is the top bit of the on-wire CLASS field of an answer,
// repurposed by mDNS (RFC 6762 §10.2) to mean "flush stale cache
// entries for this name/type/class". Harmless to decode unconditionally.
const cacheFlushBit uint16 = 0x8000

// maxSignedTTL is 2^31-1: RFC 2181 §8 requires TTLs above this to be
// treated as 0 rather than interpreted as a (nonsensical) negative
// duration by implementations that model TTL as a signed 32-bit value.
const maxSignedTTL uint32 = 1<<31 - 1

// ResourceRecord is one entry of an Answer, Authority or Additional
// section (RFC 1035 §4.1.3).
type ResourceRecord struct {
	Name       Name
	Type       Type
	Class      Class
	CacheFlush bool
	TTL        uint32
	Data       RData
}

// resourceHead holds the fields common to every resource record, read
// before the type-specific dispatch so the packet parser can recognize
// the EDNS0 OPT pseudo-record (root name + TYPE=41) before committing
// to the generic Class/TTL interpretation.
type resourceHead struct {
	name     Name
	typ      Type
	rawClass uint16
	ttl      uint32
}

func (r *reader) resourceHead() (resourceHead, error) {
	name, err := r.name()
	if err != nil {
		return resourceHead{}, err
	}

	rawType, err := r.uint16()
	if err != nil {
		return resourceHead{}, err
	}
	typ, err := ParseType(rawType)
	if err != nil {
		return resourceHead{}, err
	}

	rawClass, err := r.uint16()
	if err != nil {
		return resourceHead{}, err
	}

	ttl, err := r.uint32()
	if err != nil {
		return resourceHead{}, err
	}
	// The EDNS0 OPT pseudo-record (root name, TYPE=41) carries extended
	// RCODE, version and flags in its TTL field, so it is not clamped.
	if ttl > maxSignedTTL && !(typ == OPT && name.IsRoot()) {
		ttl = 0
	}

	return resourceHead{name: name, typ: typ, rawClass: rawClass, ttl: ttl}, nil
}

// resourceTail reads the RDLENGTH-prefixed RDATA following a
// resourceHead and dispatches it through the RData registry (C5).
func (r *reader) resourceTail(typ Type) ([]byte, RData, error) {
	rdlen, err := r.uint16()
	if err != nil {
		return nil, nil, err
	}
	rdata, err := r.take(int(rdlen))
	if err != nil {
		return nil, nil, err
	}
	data, err := parseRData(typ, rdata, r.buf)
	if err != nil {
		return nil, nil, err
	}
	return rdata, data, nil
}

// resourceRecord reads one full, ordinary (non-OPT) resource record.
func (r *reader) resourceRecord() (ResourceRecord, error) {
	head, err := r.resourceHead()
	if err != nil {
		return ResourceRecord{}, err
	}
	_, data, err := r.resourceTail(head.typ)
	if err != nil {
		return ResourceRecord{}, err
	}

	flush := head.rawClass&cacheFlushBit != 0
	class, err := ParseClass(head.rawClass &^ cacheFlushBit)
	if err != nil {
		return ResourceRecord{}, err
	}

	return ResourceRecord{
		Name:       head.name,
		Type:       head.typ,
		Class:      class,
		CacheFlush: flush,
		TTL:        head.ttl,
		Data:       data,
	}, nil
}

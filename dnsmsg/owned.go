package dnsmsg

// This file implements the owned-copy mirror (C8) of the borrowed
// parse tree: every type that holds a slice into the original message
// buffer has a Buf-suffixed counterpart that owns its own memory, so a
// Packet can be deep-cloned and handed across a lifetime boundary the
// source buffer does not survive.

// QuestionBuf is the owned counterpart of Question.
type QuestionBuf struct {
	Name            string
	QType           QType
	QClass          QClass
	UnicastResponse bool
}

// ResourceRecordBuf is the owned counterpart of ResourceRecord.
type ResourceRecordBuf struct {
	Name       string
	Type       Type
	Class      Class
	CacheFlush bool
	TTL        uint32
	Data       RDataBuf
}

// OptRecordBuf is the owned counterpart of OptRecord.
type OptRecordBuf struct {
	UDPSize  uint16
	ExtRCode uint8
	Version  uint8
	Flags    uint16
	Data     []byte
}

// PacketBuf is the owned counterpart of Packet: every Name has been
// rendered to its dotted string form and every RData slice deep-copied,
// so a PacketBuf carries no reference whatsoever to the buffer it was
// parsed from.
type PacketBuf struct {
	Header     Header
	Questions  []QuestionBuf
	Answer     []ResourceRecordBuf
	Authority  []ResourceRecordBuf
	Additional []ResourceRecordBuf
	OPT        *OptRecordBuf
}

// RDataBuf is the owned counterpart of RData.
type RDataBuf interface {
	rdataType() Type
}

// RDataABuf is the owned counterpart of RDataA.
type RDataABuf struct{ RDataA }

// RDataAAAABuf is the owned counterpart of RDataAAAA.
type RDataAAAABuf struct{ RDataAAAA }

// RDataNameBuf is the owned counterpart of RDataName.
type RDataNameBuf struct {
	Type Type
	Name string
}

func (r RDataNameBuf) rdataType() Type { return r.Type }

// RDataMXBuf is the owned counterpart of RDataMX.
type RDataMXBuf struct {
	Preference uint16
	Exchange   string
}

func (RDataMXBuf) rdataType() Type { return MX }

// RDataSOABuf is the owned counterpart of RDataSOA.
type RDataSOABuf struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (RDataSOABuf) rdataType() Type { return SOA }

// RDataSRVBuf is the owned counterpart of RDataSRV.
type RDataSRVBuf struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (RDataSRVBuf) rdataType() Type { return SRV }

// RDataTXTBuf is the owned counterpart of RDataTXT.
type RDataTXTBuf struct {
	Strings [][]byte
}

func (RDataTXTBuf) rdataType() Type { return TXT }

// RDataCAABuf is the owned counterpart of RDataCAA.
type RDataCAABuf struct {
	Critical bool
	Tag      string
	Kind     CAAKind
	Value    []byte
}

func (RDataCAABuf) rdataType() Type { return CAA }

// RDataUnknownBuf is the owned counterpart of RDataUnknown.
type RDataUnknownBuf struct {
	Type Type
	Raw  []byte
}

func (r RDataUnknownBuf) rdataType() Type { return r.Type }

// DeepClone copies p, and everything p refers to, into freshly
// allocated memory. The result shares no slice or backing array with
// the buffer p was parsed from.
func (p *Packet) DeepClone() *PacketBuf {
	clone := &PacketBuf{
		Header:     p.Header,
		Questions:  make([]QuestionBuf, len(p.Questions)),
		Answer:     make([]ResourceRecordBuf, len(p.Answer)),
		Authority:  make([]ResourceRecordBuf, len(p.Authority)),
		Additional: make([]ResourceRecordBuf, len(p.Additional)),
	}
	for i, q := range p.Questions {
		clone.Questions[i] = cloneQuestion(q)
	}
	for i, rr := range p.Answer {
		clone.Answer[i] = cloneResourceRecord(rr)
	}
	for i, rr := range p.Authority {
		clone.Authority[i] = cloneResourceRecord(rr)
	}
	for i, rr := range p.Additional {
		clone.Additional[i] = cloneResourceRecord(rr)
	}
	if p.OPT != nil {
		clone.OPT = &OptRecordBuf{
			UDPSize:  p.OPT.UDPSize,
			ExtRCode: p.OPT.ExtRCode,
			Version:  p.OPT.Version,
			Flags:    p.OPT.Flags,
			Data:     cloneBytes(p.OPT.Data),
		}
	}
	return clone
}

func cloneQuestion(q Question) QuestionBuf {
	return QuestionBuf{
		Name:            q.Name.String(),
		QType:           q.QType,
		QClass:          q.QClass,
		UnicastResponse: q.UnicastResponse,
	}
}

func cloneResourceRecord(rr ResourceRecord) ResourceRecordBuf {
	return ResourceRecordBuf{
		Name:       rr.Name.String(),
		Type:       rr.Type,
		Class:      rr.Class,
		CacheFlush: rr.CacheFlush,
		TTL:        rr.TTL,
		Data:       cloneRData(rr.Data),
	}
}

func cloneRData(d RData) RDataBuf {
	switch v := d.(type) {
	case RDataA:
		return RDataABuf{v}
	case RDataAAAA:
		return RDataAAAABuf{v}
	case RDataName:
		return RDataNameBuf{Type: v.Type, Name: v.Name.String()}
	case RDataMX:
		return RDataMXBuf{Preference: v.Preference, Exchange: v.Exchange.String()}
	case RDataSOA:
		return RDataSOABuf{
			MName:   v.MName.String(),
			RName:   v.RName.String(),
			Serial:  v.Serial,
			Refresh: v.Refresh,
			Retry:   v.Retry,
			Expire:  v.Expire,
			Minimum: v.Minimum,
		}
	case RDataSRV:
		return RDataSRVBuf{
			Priority: v.Priority,
			Weight:   v.Weight,
			Port:     v.Port,
			Target:   v.Target.String(),
		}
	case RDataTXT:
		strs := make([][]byte, len(v.Strings))
		for i, s := range v.Strings {
			strs[i] = cloneBytes(s)
		}
		return RDataTXTBuf{Strings: strs}
	case RDataCAA:
		return RDataCAABuf{
			Critical: v.Critical,
			Tag:      v.Tag,
			Kind:     v.Kind,
			Value:    cloneBytes(v.Value),
		}
	case RDataUnknown:
		return RDataUnknownBuf{Type: v.Type, Raw: cloneBytes(v.Raw)}
	default:
		return RDataUnknownBuf{Type: d.rdataType()}
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

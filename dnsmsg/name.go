package dnsmsg

import (
	"encoding/binary"
	"strings"
)

// Name is a DNS domain name as it appears on the wire: a logical
// sequence of ASCII labels terminated by a zero-length label, possibly
// using RFC 1035 §4.1.4 compression pointers. Name borrows from the
// buffer it was scanned out of and must not outlive it; use DeepClone
// (via the owning Packet) to obtain a string that can.
//
// raw spans only the bytes of this Name's own on-wire encoding — labels
// up to and including either the terminating zero octet or a 2-octet
// pointer — never the bytes a pointer refers to. original is the whole
// message buffer, kept so pointers remain dereferenceable on demand.
type Name struct {
	raw      []byte
	original []byte
}

// ScanName parses a Name starting at the beginning of data, which must
// be a slice taken from within original (a suffix of it, or an RDATA
// slice of it); literal labels are read from data, pointer targets
// from original. It implements the
// compression-pointer safety invariant required by RFC 1035 §4.1.4:
// every pointer's target offset must be strictly less than the offset
// of every pointer seen earlier in the same scan, with the bound
// initialized to len(original). This guarantees termination in at most
// O(len(original)) steps and rejects both self-referencing and
// forward-chaining pointers.
func ScanName(data, original []byte) (Name, error) {
	if len(data) == 0 {
		return Name{}, ErrUnexpectedEOF
	}

	buf := data
	pos := 0
	pointerEnd := -1 // position in `data` just past the first pointer seen, or -1
	bound := len(original)

	for {
		if pos >= len(buf) {
			return Name{}, ErrUnexpectedEOF
		}
		b := buf[pos]

		switch {
		case b == 0:
			if pointerEnd >= 0 {
				return Name{raw: data[:pointerEnd], original: original}, nil
			}
			return Name{raw: data[:pos+1], original: original}, nil

		case b&0xc0 == 0x00:
			length := int(b)
			end := pos + 1 + length
			if end > len(buf) {
				return Name{}, ErrUnexpectedEOF
			}
			for _, c := range buf[pos+1 : end] {
				if c > 0x7f {
					return Name{}, ErrLabelNotASCII
				}
			}
			pos = end

		case b&0xc0 == 0xc0:
			if pos+2 > len(buf) {
				return Name{}, ErrUnexpectedEOF
			}
			off := int(binary.BigEndian.Uint16(buf[pos:pos+2]) &^ 0xc000)
			if pointerEnd < 0 {
				// This pointer is still within `data` (buf == data until
				// the first jump below), so pos+2 is the right cutoff.
				pointerEnd = pos + 2
			}
			if off >= len(original) {
				return Name{}, ErrUnexpectedEOF
			}
			if off >= bound {
				return Name{}, ErrBadPointer
			}
			bound = off
			buf = original[off:]
			pos = 0

		default:
			return Name{}, ErrUnknownLabelFormat
		}
	}
}

// ByteLen returns the number of octets this Name consumes from the
// stream it was scanned out of.
func (n Name) ByteLen() int {
	return len(n.raw)
}

// String renders n as dotted text, dereferencing compression pointers
// as it goes. Labels are joined with '.', with no trailing dot and no
// escaping of bytes within a label (they are emitted exactly as they
// appear on the wire).
func (n Name) String() string {
	var sb strings.Builder
	buf := n.raw
	pos := 0
	first := true

	for {
		b := buf[pos]
		if b == 0 {
			return sb.String()
		}
		if b&0xc0 == 0xc0 {
			off := int(binary.BigEndian.Uint16(buf[pos:pos+2]) &^ 0xc000)
			// Safe to ignore the error: n was itself produced by a
			// successful ScanName, which already proved this suffix
			// decodes without looping or running out of bounds.
			rest, _ := ScanName(n.original[off:], n.original)
			if !first {
				sb.WriteByte('.')
			}
			sb.WriteString(rest.String())
			return sb.String()
		}

		length := int(b)
		if !first {
			sb.WriteByte('.')
		}
		sb.Write(buf[pos+1 : pos+1+length])
		pos += 1 + length
		first = false
	}
}

// Equal reports whether n and other denote the same label sequence
// after pointer resolution. Comparison is case-sensitive; callers that
// need RFC 1035 case-insensitive comparison should fold case
// themselves (e.g. via strings.EqualFold on the rendered text).
func (n Name) Equal(other Name) bool {
	return n.String() == other.String()
}

// IsZero reports whether n is the zero value (never scanned).
func (n Name) IsZero() bool {
	return n.raw == nil
}

// IsRoot reports whether n is the root name (the empty label sequence,
// encoded as a single zero octet). The EDNS0 OPT pseudo-record is
// identified by carrying the root name.
func (n Name) IsRoot() bool {
	return len(n.raw) == 1 && n.raw[0] == 0
}

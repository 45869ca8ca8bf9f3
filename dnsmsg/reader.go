package dnsmsg

import "encoding/binary"

// reader walks a message buffer with explicit bounds checking. It never
// copies the underlying buffer; every value it hands back (names,
// rdata slices) borrows directly from it. This is the cursor used by
// Parse (C6); Name compression pointers are resolved separately
// against the full buffer via ScanName, which reader.buf always is.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// take returns the next n bytes and advances the cursor, or
// ErrUnexpectedEOF if fewer than n bytes remain.
func (r *reader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// name scans a Name starting at the cursor and advances past it.
func (r *reader) name() (Name, error) {
	if r.pos >= len(r.buf) {
		return Name{}, ErrUnexpectedEOF
	}
	n, err := ScanName(r.buf[r.pos:], r.buf)
	if err != nil {
		return Name{}, err
	}
	r.pos += n.ByteLen()
	return n, nil
}

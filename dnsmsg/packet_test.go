package dnsmsg

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestParseQueryWithEDNS0(t *testing.T) {
	hexB := "236f0120000100000000000106676f6f676c6503636f6d0000010001000029100000000000000c000a0008773d66c995247430"
	b, _ := hex.DecodeString(hexB)

	p, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if p.Header.ID != 0x236f {
		t.Errorf("ID = %#x, want 0x236f", p.Header.ID)
	}
	if len(p.Questions) != 1 {
		t.Fatalf("len(Questions) = %d, want 1", len(p.Questions))
	}
	q := p.Questions[0]
	if got := q.Name.String(); got != "google.com" {
		t.Errorf("question name = %q, want google.com", got)
	}
	if q.QType != QType(A) || q.QClass != QClassIN {
		t.Errorf("question type/class = %v/%v, want A/IN", q.QType, q.QClass)
	}
	if p.OPT == nil {
		t.Fatal("OPT = nil, want non-nil")
	}
	if p.OPT.UDPSize != 4096 {
		t.Errorf("OPT.UDPSize = %d, want 4096", p.OPT.UDPSize)
	}
}

func TestParseResponseWithAnswer(t *testing.T) {
	hexB := "236f8180000100010000000106676f6f676c6503636f6d0000010001c00c00010001000000cd0004acd9af6e0000290200000000000000"
	b, _ := hex.DecodeString(hexB)

	p, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if !p.Header.Response {
		t.Errorf("Response = false, want true")
	}
	if len(p.Answer) != 1 {
		t.Fatalf("len(Answer) = %d, want 1", len(p.Answer))
	}
	rr := p.Answer[0]
	if got := rr.Name.String(); got != "google.com" {
		t.Errorf("answer name = %q, want google.com (compressed pointer)", got)
	}
	a, ok := rr.Data.(RDataA)
	if !ok {
		t.Fatalf("Data type = %T, want RDataA", rr.Data)
	}
	if got := a.Addr.String(); got != "172.217.175.110" {
		t.Errorf("A addr = %s, want 172.217.175.110", got)
	}
	if rr.TTL != 205 {
		t.Errorf("TTL = %d, want 205", rr.TTL)
	}
}

func TestParseSOAWithCompression(t *testing.T) {
	// A single SOA answer record for "example.com" whose MNAME/RNAME
	// both point back at the question's name via compression.
	var b []byte
	b = append(b, 0, 1, 0x80, 0, 0, 1, 0, 1, 0, 0, 0, 0) // header: QD=1 AN=1, response
	question := mustHex("076578616d706c6503636f6d0000060001")
	b = append(b, question...)

	// Answer: name=pointer to offset 12 (start of question name), TYPE=SOA,
	// CLASS=IN, TTL=3600, RDLENGTH=<len>, RDATA=mname(ptr) rname(ptr) 5x uint32
	rdata := mustHex("c00c") // mname -> pointer to offset 12
	rdata = append(rdata, mustHex("c00c")...) // rname -> pointer to offset 12
	var nums [20]byte
	nums[3] = 1  // serial=1
	nums[7] = 2  // refresh=2
	nums[11] = 3 // retry=3
	nums[15] = 4 // expire=4
	nums[19] = 5 // minimum=5
	rdata = append(rdata, nums[:]...)

	answer := mustHex("c00c")
	answer = append(answer, mustHex("0006")...) // TYPE=SOA
	answer = append(answer, mustHex("0001")...) // CLASS=IN
	answer = append(answer, mustHex("00000e10")...) // TTL=3600
	rdlen := []byte{byte(len(rdata) >> 8), byte(len(rdata))}
	answer = append(answer, rdlen...)
	answer = append(answer, rdata...)

	b = append(b, answer...)

	p, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if len(p.Answer) != 1 {
		t.Fatalf("len(Answer) = %d, want 1", len(p.Answer))
	}
	soa, ok := p.Answer[0].Data.(RDataSOA)
	if !ok {
		t.Fatalf("Data type = %T, want RDataSOA", p.Answer[0].Data)
	}
	if got := soa.MName.String(); got != "example.com" {
		t.Errorf("MName = %q, want example.com", got)
	}
	if soa.Serial != 1 || soa.Minimum != 5 {
		t.Errorf("Serial/Minimum = %d/%d, want 1/5", soa.Serial, soa.Minimum)
	}
}

func TestParseSRV(t *testing.T) {
	// _xmpp-server._tcp.gmail.com SRV record, uncompressed target.
	var b []byte
	b = append(b, 0, 2, 0x80, 0, 0, 1, 0, 1, 0, 0, 0, 0)
	name := mustHex("0c5f786d70702d736572766572045f74637005676d61696c03636f6d00")
	b = append(b, name...) // question name
	b = append(b, mustHex("0021")...) // QTYPE=SRV
	b = append(b, mustHex("0001")...) // QCLASS=IN

	target := mustHex("0478787838045f74637005676d61696c03636f6d00")
	rdata := []byte{0, 5, 0, 0, 0x14, 0x95} // priority=5 weight=0 port=5269
	rdata = append(rdata, target...)

	answer := mustHex("c00c")
	answer = append(answer, mustHex("0021")...) // TYPE=SRV
	answer = append(answer, mustHex("0001")...) // CLASS=IN
	answer = append(answer, mustHex("00000e10")...)
	rdlen := []byte{byte(len(rdata) >> 8), byte(len(rdata))}
	answer = append(answer, rdlen...)
	answer = append(answer, rdata...)
	b = append(b, answer...)

	p, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	srv, ok := p.Answer[0].Data.(RDataSRV)
	if !ok {
		t.Fatalf("Data type = %T, want RDataSRV", p.Answer[0].Data)
	}
	if srv.Priority != 5 || srv.Port != 0x1495 {
		t.Errorf("Priority/Port = %d/%d, want 5/5269", srv.Priority, srv.Port)
	}
	if got := srv.Target.String(); got != "xxx8._tcp.gmail.com" {
		t.Errorf("Target = %q, want xxx8._tcp.gmail.com", got)
	}
}

func TestParseSelfReferencingPointerRejected(t *testing.T) {
	b := make([]byte, 12)
	b[5] = 1 // QD=1
	b = append(b, 192, 12, 0, 1, 0, 1) // question name self-points at its own offset
	_, err := Parse(b)
	if !errors.Is(err, ErrBadPointer) {
		t.Errorf("err = %v, want ErrBadPointer", err)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	_, err := Parse(make([]byte, 4))
	if !errors.Is(err, ErrHeaderTooShort) {
		t.Errorf("err = %v, want ErrHeaderTooShort", err)
	}
}

func TestParseDuplicateOPTRejected(t *testing.T) {
	var b []byte
	b = append(b, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2) // AR=2
	opt := append([]byte{0}, mustHex("0029")...)      // root name, TYPE=OPT
	opt = append(opt, mustHex("1000")...)             // CLASS=4096
	opt = append(opt, mustHex("00000000")...)         // TTL=0
	opt = append(opt, mustHex("0000")...)              // RDLENGTH=0
	b = append(b, opt...)
	b = append(b, opt...)

	_, err := Parse(b)
	if !errors.Is(err, ErrAdditionalOPT) {
		t.Errorf("err = %v, want ErrAdditionalOPT", err)
	}
}

func TestParseTTLClamp(t *testing.T) {
	var b []byte
	b = append(b, 0, 1, 0x80, 0, 0, 1, 0, 1, 0, 0, 0, 0)
	b = append(b, mustHex("076578616d706c6503636f6d0000010001")...)
	answer := mustHex("c00c00010001")
	answer = append(answer, mustHex("ffffffff")...) // TTL above 2^31-1
	answer = append(answer, mustHex("0004")...)
	answer = append(answer, mustHex("01020304")...)
	b = append(b, answer...)

	p, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if p.Answer[0].TTL != 0 {
		t.Errorf("TTL = %d, want 0 (clamped)", p.Answer[0].TTL)
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

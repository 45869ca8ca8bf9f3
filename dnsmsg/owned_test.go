package dnsmsg

import "testing"

func TestDeepCloneOutlivesSource(t *testing.T) {
	hexB := "236f8180000100010000000106676f6f676c6503636f6d0000010001c00c00010001000000cd0004acd9af6e0000290200000000000000"
	buf := mustHex(hexB)

	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	clone := p.DeepClone()

	// Overwrite the source buffer; the clone must not be affected.
	for i := range buf {
		buf[i] = 0xff
	}

	if len(clone.Questions) != 1 || clone.Questions[0].Name != "google.com" {
		t.Errorf("Questions = %+v, want [{google.com ...}]", clone.Questions)
	}
	if len(clone.Answer) != 1 {
		t.Fatalf("len(Answer) = %d, want 1", len(clone.Answer))
	}
	rr := clone.Answer[0]
	if rr.Name != "google.com" {
		t.Errorf("Name = %q, want google.com", rr.Name)
	}
	a, ok := rr.Data.(RDataABuf)
	if !ok {
		t.Fatalf("Data type = %T, want RDataABuf", rr.Data)
	}
	if got := a.Addr.String(); got != "172.217.175.110" {
		t.Errorf("Addr = %s, want 172.217.175.110", got)
	}
	if clone.OPT == nil {
		t.Fatal("OPT = nil, want non-nil")
	}
	if clone.OPT.UDPSize != 512 {
		t.Errorf("OPT.UDPSize = %d, want 512", clone.OPT.UDPSize)
	}
}

// Command dnsdump decodes DNS messages and prints their parsed
// structure. It reads either a single message given as a hex string
// via -hex, or a stream of TCP-framed messages (RFC 1035 §4.2.2,
// each prefixed by a 2-octet big-endian length) from a file or stdin.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kalvinnen/dnswire/dnsmsg"
)

var shutdownChannel = make(chan struct{})

func setupSignals() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("[dnsdump] shutting down...")
		close(shutdownChannel)
	}()
}

func main() {
	hexMsg := flag.String("hex", "", "decode a single message given as a hex string instead of reading a stream")
	in := flag.String("in", "-", "file to read TCP-framed messages from (\"-\" for stdin)")
	flag.Parse()

	if *hexMsg != "" {
		data, err := hex.DecodeString(strings.TrimSpace(*hexMsg))
		if err != nil {
			log.Fatalf("[dnsdump] invalid -hex value: %s", err)
		}
		dump(data)
		return
	}

	setupSignals()

	var r io.Reader = os.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("[dnsdump] %s", err)
		}
		defer f.Close()
		r = f
	}

	errch := make(chan error, 1)
	go func() {
		errch <- streamMessages(r)
	}()

	select {
	case err := <-errch:
		if err != nil && err != io.EOF {
			log.Printf("[dnsdump] stream error: %s", err)
			os.Exit(1)
		}
	case <-shutdownChannel:
	}

	log.Printf("[dnsdump] bye bye")
}

// streamMessages reads length-prefixed messages from r until EOF or an
// unrecoverable read error, dumping each one as it arrives.
func streamMessages(r io.Reader) error {
	var lenBuf [2]byte
	for {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				return nil
			}
			return err
		}
		msgLen := binary.BigEndian.Uint16(lenBuf[:])
		buf := make([]byte, msgLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		dump(buf)
	}
}

func dump(data []byte) {
	p, err := dnsmsg.Parse(data)
	if err != nil {
		log.Printf("[dnsdump] parse failed: %s", err)
		return
	}
	fmt.Println(formatPacket(p))
}

func formatPacket(p *dnsmsg.Packet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %d %s %s", p.Header.ID, p.Header.Opcode, p.Header.RCode)
	if p.Header.Response {
		sb.WriteString(" qr")
	}
	if p.Header.Authoritative {
		sb.WriteString(" aa")
	}
	if p.Header.Truncated {
		sb.WriteString(" tc")
	}
	if p.Header.RecursionDesired {
		sb.WriteString(" rd")
	}
	if p.Header.RecursionAvailable {
		sb.WriteString(" ra")
	}

	for _, q := range p.Questions {
		fmt.Fprintf(&sb, " QD: %s %s %s", q.Name, q.QClass, q.QType)
	}
	for _, rr := range p.Answer {
		fmt.Fprintf(&sb, " AN: %s %s %s %d", rr.Name, rr.Class, rr.Type, rr.TTL)
	}
	for _, rr := range p.Authority {
		fmt.Fprintf(&sb, " NS: %s %s %s %d", rr.Name, rr.Class, rr.Type, rr.TTL)
	}
	for _, rr := range p.Additional {
		fmt.Fprintf(&sb, " AR: %s %s %s %d", rr.Name, rr.Class, rr.Type, rr.TTL)
	}
	if p.OPT != nil {
		fmt.Fprintf(&sb, " ReqUDPSize=%d", p.OPT.UDPSize)
	}
	return sb.String()
}

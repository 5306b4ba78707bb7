package connectivity

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestStaticProbe(t *testing.T) {
	ctx := context.Background()
	if !Static(true).Online(ctx) {
		t.Error("Static(true) reported offline")
	}
	if Static(false).Online(ctx) {
		t.Error("Static(false) reported online")
	}
}

func TestDialProbeReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	p := &DialProbe{Address: ln.Addr().String(), Timeout: time.Second, TTL: time.Minute}
	if !p.Online(context.Background()) {
		t.Error("probe against local listener reported offline")
	}
}

func TestDialProbeUnreachable(t *testing.T) {
	// Reserved TEST-NET-1 address, nothing listens there.
	p := &DialProbe{Address: "192.0.2.1:1", Timeout: 50 * time.Millisecond, TTL: time.Minute}
	if p.Online(context.Background()) {
		t.Error("probe against unroutable address reported online")
	}
}

func TestDialProbeCachesResult(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	addr := ln.Addr().String()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	p := &DialProbe{Address: addr, Timeout: time.Second, TTL: time.Minute}
	if !p.Online(context.Background()) {
		t.Fatal("initial probe reported offline")
	}

	// The listener is gone but the cached result is still within TTL.
	ln.Close()
	if !p.Online(context.Background()) {
		t.Error("cached probe result was not used")
	}
}

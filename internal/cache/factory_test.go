package cache

import (
	"context"
	"slices"
	"testing"
	"time"
)

func TestOpen_Memory(t *testing.T) {
	c, err := Open(BackendMemory, Options{Size: 100, TTL: time.Hour})
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	defer c.Close()

	key := SearchKey("breaking bad")
	c.Set(context.Background(), key, []byte(`{"results":[]}`))
	if body, ok := c.Get(context.Background(), key); !ok || string(body) != `{"results":[]}` {
		t.Fatalf("Expected stored body back, got %q (hit=%v)", body, ok)
	}
}

func TestOpen_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		backend Backend
		opts    Options
	}{
		{name: "unknown backend", backend: Backend("memcached"), opts: Options{Size: 10}},
		{name: "zero size", backend: BackendMemory, opts: Options{TTL: time.Hour}},
		{name: "negative size", backend: BackendMemory, opts: Options{Size: -1}},
		{name: "unreachable redis", backend: BackendRedis, opts: Options{
			Size:  100,
			TTL:   time.Hour,
			Redis: RedisOptions{Address: "localhost:59999"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c, err := Open(tt.backend, tt.opts); err == nil {
				_ = c.Close()
				t.Fatal("Expected Open to fail")
			}
		})
	}
}

func TestBackends(t *testing.T) {
	got := Backends()
	if !slices.Equal(got, []Backend{BackendMemory, BackendRedis}) {
		t.Errorf("Expected [memory redis], got %v", got)
	}
}

func TestSearchKey(t *testing.T) {
	if SearchKey("Inception") == SearchKey("inception") {
		t.Error("Expected search keys to preserve the query verbatim")
	}
	if got := SearchKey("dune"); got != "search:dune" {
		t.Errorf("SearchKey(dune) = %q", got)
	}
}

package core

import (
	"runtime"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithWorkers(3), WithChunkRows(5))
	if cfg.Workers != 3 {
		t.Fatalf("workers = %d, want 3", cfg.Workers)
	}
	if cfg.ChunkRows != 5 {
		t.Fatalf("chunk rows = %d, want 5", cfg.ChunkRows)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(WithWorkers(0), WithChunkRows(-1), nil)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if def.Workers != runtime.GOMAXPROCS(0) {
		t.Fatalf("default workers = %d, want GOMAXPROCS", def.Workers)
	}
}

package core

import "runtime"

// DefaultChunkRows is the number of grid rows accumulated into one partial
// statistic vector before merging.
const DefaultChunkRows = 16

// Config defines common kernel execution settings.
//
// Neither field affects numerical output: rows are always partitioned into
// ChunkRows-sized chunks whose partial results are merged in chunk order.
type Config struct {
	Workers   int
	ChunkRows int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns one worker per available CPU and DefaultChunkRows.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkRows: DefaultChunkRows,
	}
}

// WithWorkers sets the number of goroutines used for accumulation.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithChunkRows sets the number of rows per accumulation chunk.
func WithChunkRows(rows int) Option {
	return func(cfg *Config) {
		if rows > 0 {
			cfg.ChunkRows = rows
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

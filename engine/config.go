package engine

import "github.com/BurntSushi/toml"

// Config is optional, file-loadable engine tuning: a Zobrist seed
// override, a default search-depth limit for evaluators that want one,
// and a hint for how large to pre-size a transposition table. None of
// it is required — a caller can just construct board.NewZobristHasher
// and a Searcher directly — but a TOML-backed config lets an engine be
// tuned without recompiling it.
type Config struct {
	ZobristSeed        uint64 `toml:"zobrist_seed"`
	DefaultDepthLimit  int    `toml:"default_depth_limit"`
	TransTableSizeHint int    `toml:"trans_table_size_hint"`
}

// DefaultConfig mirrors board.DefaultZobristSeed and a conservative
// depth limit, so a caller who never loads a file still gets the
// documented-seed test vectors.
func DefaultConfig() Config {
	return Config{
		ZobristSeed:        2005,
		DefaultDepthLimit:  4,
		TransTableSizeHint: 1 << 16,
	}
}

// LoadConfig reads a TOML file into a Config, starting from
// DefaultConfig so a partial file only overrides the fields it sets.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, newFatalError("engine: failed to load config %q: %v", path, err)
	}
	return cfg, nil
}

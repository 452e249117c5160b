package engine

// cacheEntry is a transposition/repetition record: a stored eval and
// the depth it was computed at, plus a play count distinguishing "on
// the current search path, not yet evaluated" from "evaluated".
type cacheEntry struct {
	eval      Eval
	depth     int
	evaluated bool
	playCount int
}

// PositionCache is an embeddable cache/on-path-set implementation of
// the seven cache methods Evaluator requires. Every concrete
// evaluator in this repo embeds one rather than reimplementing the
// bookkeeping, so characters.Materialist and characters.PositionalPST
// only need to supply the actual scoring logic.
type PositionCache struct {
	entries map[uint64]*cacheEntry
}

// NewPositionCache returns an empty cache.
func NewPositionCache() *PositionCache {
	return &PositionCache{entries: make(map[uint64]*cacheEntry)}
}

// NewPositionCacheWithCapacity returns an empty cache whose backing map
// is pre-sized to capacityHint entries, avoiding rehashing for a caller
// that knows roughly how large a search's working set will get (see
// Config.TransTableSizeHint).
func NewPositionCacheWithCapacity(capacityHint int) *PositionCache {
	return &PositionCache{entries: make(map[uint64]*cacheEntry, capacityHint)}
}

func (c *PositionCache) entry(hash uint64) *cacheEntry {
	e, ok := c.entries[hash]
	if !ok {
		e = &cacheEntry{}
		c.entries[hash] = e
	}
	return e
}

// CacheStore records an evaluation for hash at depth, marking it
// evaluated. It does not touch the play count.
func (c *PositionCache) CacheStore(hash uint64, eval Eval, depth int) {
	e := c.entry(hash)
	e.eval = eval
	e.depth = depth
	e.evaluated = true
}

// CachePlay marks hash as one more ply deep on the current search path.
func (c *PositionCache) CachePlay(hash uint64) {
	c.entry(hash).playCount++
}

// CacheUnplay removes one play marker. Unplaying a position with no
// outstanding play marker is a bug in the caller's make/unmake
// discipline, not a recoverable condition.
func (c *PositionCache) CacheUnplay(hash uint64) {
	e, ok := c.entries[hash]
	if !ok || e.playCount == 0 {
		fatalf("engine: cache unplay on hash %x with no outstanding play", hash)
	}
	e.playCount--
}

// IsOnCurrentPath reports whether hash currently has an outstanding
// play marker, i.e. the position recurs along the line being searched.
func (c *PositionCache) IsOnCurrentPath(hash uint64) bool {
	e, ok := c.entries[hash]
	return ok && e.playCount > 0
}

// IsCached reports whether hash has a stored evaluation.
func (c *PositionCache) IsCached(hash uint64) bool {
	e, ok := c.entries[hash]
	return ok && e.evaluated
}

// CachedEval returns the stored evaluation for hash. Calling this
// without first checking IsCached is a programming error.
func (c *PositionCache) CachedEval(hash uint64) Eval {
	e, ok := c.entries[hash]
	if !ok || !e.evaluated {
		fatalf("engine: cached eval requested for unevaluated hash %x", hash)
	}
	return e.eval
}

// CachedDepth returns the depth the stored evaluation was computed at.
func (c *PositionCache) CachedDepth(hash uint64) int {
	e, ok := c.entries[hash]
	if !ok || !e.evaluated {
		fatalf("engine: cached depth requested for unevaluated hash %x", hash)
	}
	return e.depth
}

// Clear drops every cache entry and play marker, the hook §5 gives
// callers who want a fresh cache between independent root searches.
func (c *PositionCache) Clear() {
	c.entries = make(map[uint64]*cacheEntry)
}

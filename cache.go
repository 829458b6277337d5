package charts

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

type cacheKey struct {
	hash uint64
	kind Kind
	min  float64
	rg   float64
	view Viewport
}

// PathCache remembers the last path built. A new request with the same
// points, kind, range and viewport returns the remembered path, any other
// request replaces it.
type PathCache struct {
	mu    sync.Mutex
	key   cacheKey
	path  Path
	valid bool

	hits   int
	misses int
}

func (c *PathCache) Build(points []DataPoint, kind Kind, vp Viewport, min, rg float64) Path {
	key := cacheKey{
		hash: HashPoints(points),
		kind: kind,
		min:  min,
		rg:   rg,
		view: vp,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.key == key {
		c.hits++
		return c.path.Clone()
	}
	c.misses++
	c.key = key
	c.path = BuildPath(points, kind, vp, min, rg)
	c.valid = true
	return c.path.Clone()
}

func (c *PathCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.path = Path{}
}

// Stats returns the number of hits and misses since the creation of the
// cache.
func (c *PathCache) Stats() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// HashPoints digests every field of the points that has an influence on the
// path built from them.
func HashPoints(points []DataPoint) uint64 {
	var (
		dig = xxhash.New()
		buf [8]byte
	)
	write := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		dig.Write(buf[:])
	}
	for _, pt := range points {
		var flags uint64
		if pt.Ignore {
			flags |= 1
		}
		flags |= uint64(pt.Kind) << 1
		binary.LittleEndian.PutUint64(buf[:], flags)
		dig.Write(buf[:])
		write(pt.Value)
		write(pt.Upper)
		write(pt.Lower)
	}
	return dig.Sum64()
}

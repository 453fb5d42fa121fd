// ABOUTME: Display-width measurement of strings under grapheme-cluster semantics
// ABOUTME: ANSI sequences count as zero; LRU cache and ASCII fast path for hot calls

package width

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// lruEntry holds one cached measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU for non-ASCII string widths. container/list gives
// O(1) eviction; sync.RWMutex allows concurrent lookups.
type cache struct {
	mu    sync.RWMutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		back := c.order.Back()
		if back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// String returns the display width of s in terminal columns. ANSI escape
// sequences contribute zero columns; everything else is measured one
// grapheme cluster at a time, so wide CJK and emoji count as 2 and
// combining marks count as 0.
func String(s string) int {
	if s == "" {
		return 0
	}
	// Fast path: printable ASCII with no escape sequences.
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := measure(s)
	widthCache.put(s, w)
	return w
}

// Clusters splits s into its grapheme clusters, in order. ANSI sequences
// are not treated specially; callers measuring styled text should strip
// them first.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
		s = rest
		state = newState
	}
	return out
}

// Cluster returns the display width of a single grapheme cluster.
// The width of the cluster's first rune decides; trailing combining
// marks and variation selectors do not add columns.
func Cluster(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// isPlainASCII reports whether s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// measure sums cluster widths after dropping ANSI escape sequences.
func measure(s string) int {
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += Cluster(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// Package perf holds a lightweight in-process timing collector. Handlers and
// the store wrapper record durations; aggregation happens only when a
// snapshot is requested.
package perf

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 4096

// EntryKind distinguishes request vs query entries.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is a single timing record stored in the ring buffer.
type Entry struct {
	Kind       EntryKind
	Path       string // HTTP path or store operation
	StatusCode int    // HTTP status (0 for queries)
	DurationMs float64
	Timestamp  time.Time
}

// Collector is a fixed-size ring buffer for timing entries. Writes are
// non-blocking; when full, the oldest entries are overwritten.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	pos     int
	filled  bool
	count   int64
}

// NewCollector creates a collector with the given ring buffer capacity.
// PRE: size > 0 (non-positive falls back to DefaultRingSize)
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Record appends an entry to the ring buffer.
// PRE: e is a valid Entry
// POST: Entry stored; if buffer full, oldest entry overwritten
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos = (c.pos + 1) % c.size
	if c.pos == 0 {
		c.filled = true
	}
	c.mu.Unlock()
	atomic.AddInt64(&c.count, 1)
}

// TotalRecorded returns the total number of entries ever recorded.
func (c *Collector) TotalRecorded() int64 {
	return atomic.LoadInt64(&c.count)
}

// PathStat aggregates timings for one path or store operation.
type PathStat struct {
	Path  string
	Count int
	MaxMs float64
	AvgMs float64
}

// Snapshot holds aggregated performance data computed on read.
type Snapshot struct {
	TotalRequests int64
	RequestP50Ms  float64
	RequestP95Ms  float64
	RequestP99Ms  float64
	QueryP50Ms    float64
	QueryP95Ms    float64
	QueryP99Ms    float64
	SlowestPaths  []PathStat
}

// TakeSnapshot aggregates the current ring buffer contents.
// PRE: none
// POST: Returns percentiles over buffered entries and the slowest paths
func (c *Collector) TakeSnapshot(maxPaths int) Snapshot {
	c.mu.Lock()
	n := c.pos
	if c.filled {
		n = c.size
	}
	buf := make([]Entry, n)
	copy(buf, c.entries[:n])
	c.mu.Unlock()

	var requests, queries []float64
	byPath := make(map[string]*PathStat)
	var totals = make(map[string]float64)
	for _, e := range buf {
		switch e.Kind {
		case KindRequest:
			requests = append(requests, e.DurationMs)
		case KindQuery:
			queries = append(queries, e.DurationMs)
		}
		st, ok := byPath[e.Path]
		if !ok {
			st = &PathStat{Path: e.Path}
			byPath[e.Path] = st
		}
		st.Count++
		totals[e.Path] += e.DurationMs
		if e.DurationMs > st.MaxMs {
			st.MaxMs = e.DurationMs
		}
	}

	var paths []PathStat
	for path, st := range byPath {
		st.AvgMs = totals[path] / float64(st.Count)
		paths = append(paths, *st)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].MaxMs > paths[j].MaxMs })
	if maxPaths > 0 && len(paths) > maxPaths {
		paths = paths[:maxPaths]
	}

	return Snapshot{
		TotalRequests: c.TotalRecorded(),
		RequestP50Ms:  percentile(requests, 50),
		RequestP95Ms:  percentile(requests, 95),
		RequestP99Ms:  percentile(requests, 99),
		QueryP50Ms:    percentile(queries, 50),
		QueryP95Ms:    percentile(queries, 95),
		QueryP99Ms:    percentile(queries, 99),
		SlowestPaths:  paths,
	}
}

// percentile returns the p-th percentile of values using nearest-rank.
// PRE: 0 < p <= 100
// POST: Returns 0 for an empty slice
func percentile(values []float64, p int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	rank := (p*len(sorted) + 99) / 100 // ceil
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

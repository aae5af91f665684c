package spectrum

import (
	"sync"
)

// History keeps the most recent samples of a streamed signal in a circular
// buffer, so a live channel can be analysed over a sliding window. Writes
// beyond capacity overwrite the oldest samples. History is safe for
// concurrent use.
type History struct {
	data     []float64
	capacity int
	size     int
	writePos int
	mu       sync.Mutex
}

// NewHistory creates a history holding up to capacity samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}

	return &History{
		data:     make([]float64, capacity),
		capacity: capacity,
	}
}

// Write appends samples, dropping the oldest when full.
func (h *History) Write(samples ...float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Only the tail can survive.
	if len(samples) > h.capacity {
		samples = samples[len(samples)-h.capacity:]
	}

	for _, sample := range samples {
		h.data[h.writePos] = sample
		h.writePos = (h.writePos + 1) % h.capacity
		if h.size < h.capacity {
			h.size++
		}
	}
}

// Snapshot returns the held samples, oldest first.
func (h *History) Snapshot() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]float64, h.size)
	start := (h.writePos - h.size + h.capacity) % h.capacity
	n := copy(result, h.data[start:min(start+h.size, h.capacity)])
	copy(result[n:], h.data[:h.size-n])
	return result
}

// Len returns the number of samples held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

// Full reports whether the history holds capacity samples.
func (h *History) Full() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size == h.capacity
}

// Capacity returns the buffer capacity.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear removes all samples.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.size = 0
	h.writePos = 0
}

// AnalyzeHistory analyses the held samples. The history must be full and
// its capacity must match the analyzer size.
func (a *Analyzer) AnalyzeHistory(h *History) ([]Bin, error) {
	return a.Analyze(h.Snapshot())
}

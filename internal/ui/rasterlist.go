package ui

import (
	"fmt"
	"sync"

	"github.com/enumura1/svg-comparison/internal/scan"
)

// RasterList manages the collection of raster files found by the
// directory scan: the ordered list and the current position. The
// scanner appends from its own goroutine while the game loop reads,
// so every method is thread-safe.
type RasterList struct {
	mu sync.RWMutex

	items scan.FileItems
	index int
}

// NewRasterList creates an empty list positioned at the start.
func NewRasterList() *RasterList {
	return &RasterList{items: make(scan.FileItems, 0)}
}

// Append adds a single file to the end of the list.
func (rl *RasterList) Append(item scan.FileItem) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.items = append(rl.items, item)
}

// AppendBatch adds a batch of files to the end of the list.
func (rl *RasterList) AppendBatch(items scan.FileItems) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.items = append(rl.items, items...)
}

// Clear empties the list and rewinds the position.
func (rl *RasterList) Clear() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.items = nil
	rl.index = 0
}

// Count returns the number of files in the list.
func (rl *RasterList) Count() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.items)
}

// Index returns the current position.
func (rl *RasterList) Index() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return rl.index
}

// Current returns the file at the current position. The second result
// is false when the list is empty.
func (rl *RasterList) Current() (scan.FileItem, bool) {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	if len(rl.items) == 0 {
		return scan.FileItem{}, false
	}
	if rl.index < 0 || rl.index >= len(rl.items) {
		// The list shrank underneath the index; snap back to the start.
		return rl.items[0], true
	}
	return rl.items[rl.index], true
}

// Advance moves the position by delta, wrapping around at both ends.
// It returns the file at the new position, or false when the list is
// empty.
func (rl *RasterList) Advance(delta int) (scan.FileItem, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	n := len(rl.items)
	if n == 0 {
		return scan.FileItem{}, false
	}
	rl.index = (rl.index + delta%n + n) % n
	return rl.items[rl.index], true
}

// Dump returns a short status string for the debug overlay.
func (rl *RasterList) Dump() string {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return fmt.Sprintf("%d/%d", rl.index+1, len(rl.items))
}

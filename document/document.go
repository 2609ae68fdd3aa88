package document

import (
	"sync/atomic"

	"github.com/hupe1980/rkmatch/internal/resource"
)

// Document is a loaded, normalized document.
type Document struct {
	// Name is the source string the document was loaded from.
	Name   string
	Source Source
	// Data is the normalized content.
	Data []byte
	// RawSize is the stored size before decompression.
	RawSize int64
	Codec   Codec

	controller *resource.Controller
	reserved   int64
	released   atomic.Bool
}

// Len returns the normalized length.
func (d *Document) Len() int { return len(d.Data) }

// Release returns the document's memory reservation and drops its data.
// It is idempotent.
func (d *Document) Release() {
	if d == nil || d.released.Swap(true) {
		return
	}
	d.controller.ReleaseMemory(d.reserved)
	d.Data = nil
}

// ReleaseAll releases every non-nil document in docs.
func ReleaseAll(docs []*Document) {
	for _, d := range docs {
		d.Release()
	}
}

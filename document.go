package plot

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Document is a roster of figures that are shown or exported together.
// It is the explicit replacement for ambient "current document" state:
// the core components (Figure, AxisProxy, ComputeRenderers) never consult
// it implicitly.
//
// Unlike Figure, Document is safe for concurrent use, since applications
// commonly register figures from setup code while exporters read the
// roster.
type Document struct {
	mu      sync.RWMutex
	title   string
	figures []*Figure
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Title returns the document title.
func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.title
}

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// Add appends a figure to the document roster.
func (d *Document) Add(f *Figure) {
	if f == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.figures = append(d.figures, f)
}

// Figures returns the roster as an ordered snapshot.
func (d *Document) Figures() []*Figure {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.figures)
}

// Clear removes every figure from the roster, keeping the title.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.figures = nil
}

// currentDoc stores the process-wide current document. Accessed atomically
// so the document can be swapped concurrently with reads.
var currentDoc atomic.Pointer[Document]

func init() {
	currentDoc.Store(NewDocument())
}

// CurrentDocument returns the process-wide current document.
// A fresh empty document exists from process start; it is never nil.
func CurrentDocument() *Document {
	return currentDoc.Load()
}

// SetCurrentDocument replaces the process-wide current document.
// Passing nil installs a fresh empty document.
func SetCurrentDocument(d *Document) {
	if d == nil {
		d = NewDocument()
	}
	currentDoc.Store(d)
}

// ResetCurrentDocument installs and returns a fresh empty document.
// Test suites call this between runs to drop accumulated figures.
func ResetCurrentDocument() *Document {
	d := NewDocument()
	currentDoc.Store(d)
	return d
}

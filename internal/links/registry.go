package links

import (
	"errors"
	"fmt"

	"github.com/username/agenda/pkg/dateutil"
)

var (
	// ErrUnknownLink is returned when a key was never allocated
	ErrUnknownLink = errors.New("unknown link key")
	// ErrDuplicateKey is returned when a key is allocated twice
	ErrDuplicateKey = errors.New("link key already allocated")
	// ErrAlreadyBound is returned when a link is bound to a second page
	ErrAlreadyBound = errors.New("link already bound to a page")
)

// Handle is an opaque link identifier issued by the document
type Handle int

// Linker is the part of a document that creates internal links
type Linker interface {
	// AddLink creates a new internal link and returns its identifier
	AddLink() int
	// SetLink makes the current page the target of link
	SetLink(link int)
}

// Registry maps page keys ("YYYY", "YYYY-MM", "YYYY-MM-DD") to link handles
type Registry struct {
	doc     Linker
	handles map[string]Handle
	bound   map[Handle]bool
}

// NewRegistry creates an empty Registry backed by doc
func NewRegistry(doc Linker) *Registry {
	return &Registry{
		doc:     doc,
		handles: make(map[string]Handle),
		bound:   make(map[Handle]bool),
	}
}

// Populate allocates the links of a whole year: the year page, then each month
// page followed by its 31 day slots, invalid days included.
func (r *Registry) Populate(year int) error {
	if _, err := r.Allocate(dateutil.YearKey(year)); err != nil {
		return err
	}

	for month := 1; month <= 12; month++ {
		if _, err := r.Allocate(dateutil.MonthKey(year, month)); err != nil {
			return err
		}
		for day := 1; day <= 31; day++ {
			if _, err := r.Allocate(dateutil.DayKey(year, month, day)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Allocate issues a fresh handle for key
func (r *Registry) Allocate(key string) (Handle, error) {
	if _, ok := r.handles[key]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}

	h := Handle(r.doc.AddLink())
	r.handles[key] = h
	return h, nil
}

// Resolve returns the handle allocated for key
func (r *Registry) Resolve(key string) (Handle, error) {
	h, ok := r.handles[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLink, key)
	}
	return h, nil
}

// MustResolve is like Resolve but panics on unknown keys.
// Rendering only asks for keys created by Populate, so a miss is a bug.
func (r *Registry) MustResolve(key string) Handle {
	h, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}
	return h
}

// Bind makes the current page the target of the link of key
func (r *Registry) Bind(key string) error {
	h, err := r.Resolve(key)
	if err != nil {
		return err
	}
	if r.bound[h] {
		return fmt.Errorf("%w: %s", ErrAlreadyBound, key)
	}

	r.doc.SetLink(int(h))
	r.bound[h] = true
	return nil
}

// IsBound reports whether the link of key already targets a page
func (r *Registry) IsBound(key string) bool {
	h, ok := r.handles[key]
	return ok && r.bound[h]
}

// Len returns the number of allocated keys
func (r *Registry) Len() int {
	return len(r.handles)
}

// Package layout draws the year, month and day pages of the planner.
package layout

import (
	"github.com/username/agenda/internal/events"
	"github.com/username/agenda/internal/links"
	"github.com/username/agenda/internal/locale"
)

// Style holds the user-tunable look of the day pages
type Style struct {
	LineWidth float64 // stroke of the ruled lines
	LineColor float64 // gray level of the ruled lines (0-255), higher is lighter
}

// DefaultStyle returns thin light-gray ruled lines
func DefaultStyle() Style {
	return Style{
		LineWidth: 0.1,
		LineColor: 200,
	}
}

// Renderer draws pages onto a Surface. The event store is only read.
type Renderer struct {
	surface Surface
	links   *links.Registry
	store   *events.Store
	names   locale.Names
	style   Style
}

// NewRenderer creates a new Renderer
func NewRenderer(surface Surface, registry *links.Registry, store *events.Store, names locale.Names, style Style) *Renderer {
	return &Renderer{
		surface: surface,
		links:   registry,
		store:   store,
		names:   names,
		style:   style,
	}
}

// link returns the link identifier of a page key
func (r *Renderer) link(key string) int {
	return int(r.links.MustResolve(key))
}

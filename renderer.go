package vtxt

import "github.com/vultureui/vtxt/font"

// The [Renderer] draws and measures text using the fonts loaded in
// a [font.Registry]. Fonts are selected on each call by their slot id.
//
// Renderers have three groups of functions:
//  - Measuring functions: [Renderer.MeasureWidth](),
//    [Renderer.MeasureHeight]() and [Renderer.LineHeight]().
//  - Single line drawing: [Renderer.DrawLine]() and
//    [Renderer.DrawLineShadow]().
//  - Wrapped drawing: [Renderer.DrawMultiline]() and its layout-only
//    counterpart [Renderer.WrapLines]().
//
// Renderers don't own any resources themselves. Many renderers can
// share a registry, but like the registry, they are not safe for
// concurrent use.
type Renderer struct {
	registry *font.Registry
}

// Creates a new renderer for the given registry. If registry is nil,
// a new one with the default rasterization engine is created.
func NewRenderer(registry *font.Registry) *Renderer {
	if registry == nil {
		registry = font.NewRegistry(nil)
	}
	return &Renderer{registry: registry}
}

// Returns the registry used by the renderer.
func (self *Renderer) Registry() *font.Registry {
	return self.registry
}

// Returns the line height of the font in the given slot. See
// [font.Registry.LineHeight]().
func (self *Renderer) LineHeight(id int) int {
	return self.registry.LineHeight(id)
}

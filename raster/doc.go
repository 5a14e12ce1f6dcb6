// Package raster contains the font rasterization backend used by vtxt.
//
// The [Engine] and [Face] interfaces capture everything the rest of
// the module needs from a rasterization library: opening faces at a
// point size, font ascent, text measuring and rendering a string to an
// anti-aliased image. [DefaultEngine] implements them on top of
// golang.org/x/image, without cgo.
//
// Most users never deal with this package directly beyond passing
// [NewEngine]() to a font registry.
package raster

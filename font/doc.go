// Package font loads fonts into a fixed set of numbered slots.
//
// A [Registry] owns the loaded faces and the lifetime of the
// rasterization engine behind them. Slots are identified by small
// integer ids, which are best given names by the caller:
//   const (
//       MenuFont = iota
//       TextFont
//   )
//   registry := font.NewRegistry(raster.NewEngine())
//   defer registry.Shutdown()
//   err := registry.Load(TextFont, "fonts/VeraSe.ttf", 0, 12)
//
// The package also includes some helpers to parse fonts and query
// their properties.
package font

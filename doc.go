// vtxt is a small package for drawing plain text on game screens.
//
// It's built around three pieces:
//  - A [font.Registry], holding up to [font.MaxFonts] fonts loaded by
//    small integer slot ids.
//  - A [Renderer], which measures and draws text with the registry
//    fonts onto any [surface.Surface].
//  - The [wrap] package, used by [Renderer.DrawMultiline] to fit text
//    into a pixel width budget with greedy word wrapping.
//
// Basic usage:
//   registry := font.NewRegistry(nil)
//   defer registry.Shutdown()
//   err := registry.Load(0, "fonts/VeraMono.ttf", 0, 16)
//   if err != nil { ... }
//
//   renderer := vtxt.NewRenderer(registry)
//   white := target.Format().MapRGB(255, 255, 255)
//   black := target.Format().MapRGB(0, 0, 0)
//   renderer.DrawMultiline(0, message, target, 8, 8, white, black, 200)
//
// Text is drawn as printable ASCII only: any other byte is replaced by
// a space before measuring or rasterizing. Drawing and measuring are
// not safe for concurrent use; a single goroutine should own both the
// registry and its renderers.
//
// Logging is silent by default. Use [SetLogger] to route the package
// logs to your own [*slog.Logger].
package vtxt

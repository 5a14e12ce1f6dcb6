package vtxt

import "context"
import "log/slog"

import "github.com/vultureui/vtxt/internal/logger"
import "github.com/vultureui/vtxt/surface"
import "github.com/vultureui/vtxt/wrap"

// Draws the given text with a shadow, wrapped into lines that fit the
// given width in pixels. Lines are broken greedily at the last space,
// tab or line break that makes them fit. Words wider than maxWidth
// can't be broken and are drawn overflowing the width limit.
//
// Each line is drawn with [Renderer.DrawLineShadow]() at
// y + lineIndex*stride, where stride is the height of the whole text as
// measured by [Renderer.MeasureHeight]().
//
// Drawing is best effort: lines that fail to draw (e.g. empty lines
// resulting from consecutive breakers) are skipped and logged at debug
// level.
func (self *Renderer) DrawMultiline(id int, text string, dst surface.Surface, x, y int, textColor, shadowColor surface.Pixel, maxWidth int) {
	stride := self.MeasureHeight(id, text)
	splitter := wrap.NewSplitter(text, maxWidth, self.widthMeasurer(id))

	log := logger.Get()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	for line := 0; ; line++ {
		segment, ok := splitter.Next()
		if !ok {
			return
		}

		if debug && segment.Overflows(maxWidth) {
			log.Debug("unsplittable text overflows wrap width", "line", line, "width", segment.Width, "max_width", maxWidth)
		}
		err := self.DrawLineShadow(id, segment.Text, dst, x, y+line*stride, textColor, shadowColor)
		if debug && err != nil {
			log.Debug("wrapped line not drawn", "line", line, "err", err)
		}
	}
}

// Returns the lines that [Renderer.DrawMultiline]() would draw for the
// given text, without drawing anything. Useful to size dialogs and
// text boxes beforehand.
func (self *Renderer) WrapLines(id int, text string, maxWidth int) []wrap.Segment {
	return wrap.Lines(text, maxWidth, self.widthMeasurer(id))
}

func (self *Renderer) widthMeasurer(id int) wrap.MeasureFunc {
	return func(text string) int {
		return self.MeasureWidth(id, text)
	}
}

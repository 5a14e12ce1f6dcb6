package vtxt

// Returns the width in pixels of the given text when drawn with the
// font in the given slot, including advances and kerning. Empty text,
// empty slots and out of range ids measure 0.
//
// The text is sanitized before measuring, so the result matches what
// [Renderer.DrawLine]() would produce.
func (self *Renderer) MeasureWidth(id int, text string) int {
	width, _ := self.measure(id, text)
	return width
}

// Same as [Renderer.MeasureWidth](), but for the height. The height
// doesn't depend on the text contents, only on the font, but empty
// text still measures 0.
func (self *Renderer) MeasureHeight(id int, text string) int {
	_, height := self.measure(id, text)
	return height
}

func (self *Renderer) measure(id int, text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	face := self.registry.Face(id)
	if face == nil {
		return 0, 0
	}
	return face.Size(Sanitize(text))
}

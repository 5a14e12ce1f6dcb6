package font

import "errors"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// A single shared sfnt.Buffer for property lookups. It's only used when
// nobody else holds it; otherwise sfnt allocates a temporary buffer.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer atomic.Bool

func getSfntBuffer() *sfnt.Buffer {
	if !usingSfntBuffer.CompareAndSwap(false, true) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		usingSfntBuffer.Store(false)
	}
}

// Returns the requested font property for the given font. If the
// property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound {
		return "", ErrNotFound
	}
	return str, err
}

// Returns the full name of the given font, like "Go Regular".
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font, like "Go".
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the runes in the given text that can't be represented by the
// font. Repeated runes are reported once per occurrence.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)

	var missing []rune
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil {
			return missing, err
		}
		if index == 0 {
			missing = append(missing, codePoint)
		}
	}
	return missing, nil
}

package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strconv"

import "golang.org/x/image/font/sfnt"

// Parses the font at the given index of the given font data. Both
// single fonts (.ttf, .otf) and font collections (.ttc, .otc) are
// supported; single fonts only have index 0. The bytes must not be
// modified while the font is in use.
//
// This is a low level function; you may prefer to use a [Registry]
// instead.
func ParseFromBytes(fontBytes []byte, index int) (*sfnt.Font, error) {
	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= collection.NumFonts() {
		return nil, errors.New("font index " + strconv.Itoa(index) + " out of range (" +
			strconv.Itoa(collection.NumFonts()) + " fonts available)")
	}
	return collection.Font(index)
}

// Attempts to parse the font at the given index of the file located
// at the given path. Supported formats are TrueType and OpenType fonts
// and collections. The file contents decide the format, not the path's
// extension.
//
// This is a low level function; you may prefer to use a [Registry]
// instead.
func ParseFromPath(path string, index int) (*sfnt.Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return parseFontFileAndClose(file, index)
}

// Same as [ParseFromPath](), but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFromFS(filesys fs.FS, path string, index int) (*sfnt.Font, error) {
	file, err := filesys.Open(path)
	if err != nil {
		return nil, err
	}
	return parseFontFileAndClose(file, index)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, index int) (*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil {
		return nil, err
	}
	return ParseFromBytes(fontBytes, index)
}

package font

// Helpers shared by the package tests. Fonts come from the Go font
// family bundled with golang.org/x/image, so no assets are needed.

import "os"
import "path/filepath"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"

// Writes the Go regular font to a temporary directory and returns
// its path.
func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	err := os.WriteFile(path, goregular.TTF, 0o600)
	if err != nil {
		t.Fatalf("writing test font: %s", err)
	}
	return path
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/goregular.ttf": &fstest.MapFile{Data: goregular.TTF},
		"fonts/gobold.ttf":    &fstest.MapFile{Data: gobold.TTF},
		"fonts/readme.txt":    &fstest.MapFile{Data: []byte("not a font")},
	}
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

package vtxt

// Returns a copy of the text with every byte outside the printable
// ASCII range (0x20 to 0x7E) replaced by a space. Multi-byte UTF-8
// sequences become one space per byte, so the result always has the
// same length as the input.
//
// Text that is already printable is returned as is, without copying.
func Sanitize(text string) string {
	first := -1
	for i := 0; i < len(text); i++ {
		if !isPrint(text[i]) {
			first = i
			break
		}
	}
	if first == -1 {
		return text
	}

	buffer := []byte(text)
	for i := first; i < len(buffer); i++ {
		if !isPrint(buffer[i]) {
			buffer[i] = ' '
		}
	}
	return string(buffer)
}

func isPrint(char byte) bool {
	return char >= 0x20 && char <= 0x7E
}

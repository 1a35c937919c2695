package base64

import "strings"

// GetContentType extracts the MIME type from a data URI, e.g.
// "data:application/pdf;base64,..." yields "application/pdf".
// Returns the empty string when the input is not a data URI.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

package backend

import "strings"

// ValidClipboardText reports whether text can be handed to the host
// clipboard API. Host clipboards take C strings, so text with an embedded
// NUL is dropped by the callers rather than silently truncated.
func ValidClipboardText(text string) bool {
	return !strings.ContainsRune(text, 0)
}

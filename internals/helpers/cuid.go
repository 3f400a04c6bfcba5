package helper

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCUID membuat correlation id pendek untuk natural key (agency.cuid dsb).
// Bentuk: "c" + 24 hex char, URL-safe.
func GenerateCUID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "c" + raw[:24]
}

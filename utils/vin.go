package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateVIN produces a pseudo-unique 17-character VIN placeholder.
// It is not validated against real-world VIN rules and uniqueness is not
// enforced; the VIN is never used as a business key.
func GenerateVIN() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	// Real VINs never contain I, O or Q
	raw = strings.NewReplacer("I", "1", "O", "0", "Q", "9").Replace(raw)
	return fmt.Sprintf("OL%s", raw[:15])
}

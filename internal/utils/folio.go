package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewFolio builds a short display code like "PAS-20260829-1A2B3C".
// The uuid suffix keeps folios unique without a DB round trip.
func NewFolio(prefix string) string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = "DOC"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), suffix)
}

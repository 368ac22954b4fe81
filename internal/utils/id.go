// internal/utils/id.go
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewEntityID returns a unix-millisecond prefix plus a short random
// suffix. Ids sort roughly by creation time; uniqueness is best-effort,
// not cryptographic.
func NewEntityID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// NewPaymentID is an entity id with the payment marker the original
// records carry.
func NewPaymentID() string {
	return "pay-" + NewEntityID()
}

package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/and161185/clubhouse/internal/model"
	"github.com/google/uuid"
)

const (
	ManualPrefix = "MAN"
	JerseyPrefix = "REC"
)

// NewNumber builds a human-readable receipt number: a type prefix, the issue
// time in milliseconds and a random suffix. Uniqueness is best effort.
func NewNumber(kind model.ReceiptType, now time.Time) string {
	prefix := ManualPrefix
	if kind == model.JerseyReceipt {
		prefix = JerseyPrefix
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}

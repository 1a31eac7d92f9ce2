package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"loyalty-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

func invalidCursor() error {
	return errs.Invalid("after", "malformed cursor")
}

// Cursor points past the last row of a page. An empty After starts at the newest row.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision.
// key is the row's tiebreak within one timestamp.
func EncodeAfterCursor(t time.Time, key string) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), key)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, string, error) {
	if cursor == "" {
		return time.Time{}, "", fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, "", fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid cursor format: expected '<micros>-<key>'")
	}
	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid timestamp: %w", err)
	}
	return time.UnixMicro(micros).UTC(), parts[1], nil
}

func decodeUUIDCursor(c *Cursor) (time.Time, uuid.UUID, error) {
	at, key, err := DecodeAfterCursor(c.After)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	id, err := uuid.Parse(key)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}
	return at, id, nil
}

func decodeSeqCursor(c *Cursor) (time.Time, int64, error) {
	at, key, err := DecodeAfterCursor(c.After)
	if err != nil {
		return time.Time{}, 0, err
	}
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid sequence: %w", err)
	}
	return at, id, nil
}

func hasCursor(c *Cursor) bool {
	return c != nil && c.After != ""
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// fetchLimit asks the store for one extra row so the caller can tell whether another page exists.
func fetchLimit(limit int) int32 {
	return int32(limit + 1) // #nosec G115 -- limit is bounded by ValidateLimit
}

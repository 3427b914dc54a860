package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Cursor tokens are opaque to clients: the entry date and creation time of
// the last row on a page, formatted with nanosecond precision and base64
// wrapped. Both fields are needed because entries share dates and the listing
// orders on (entry_date, created_at).

const timeFormat = time.RFC3339Nano

// EncodeToken builds the cursor for the row after (entryDate, createdAt).
func EncodeToken(entryDate time.Time, createdAt time.Time) string {
	raw := entryDate.Format(timeFormat) + "|" + createdAt.Format(timeFormat)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeToken unwraps a cursor produced by EncodeToken. Any malformed token,
// whatever the cause, is reported as an invalid pagination token.
func DecodeToken(token string) (time.Time, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token: %w", err)
	}

	datePart, createdPart, found := strings.Cut(string(raw), "|")
	if !found {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token: missing separator")
	}

	entryDate, err := time.Parse(timeFormat, datePart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token: %w", err)
	}
	createdAt, err := time.Parse(timeFormat, createdPart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token: %w", err)
	}

	return entryDate, createdAt, nil
}

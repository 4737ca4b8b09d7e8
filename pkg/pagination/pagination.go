package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the page size used when a cursor arrives without a limit.
	DefaultLimit = 12
	// MaxLimit caps how many products a single page may return.
	MaxLimit = 100
)

// Params holds cursor pagination inputs from controllers. A zero Limit and
// an empty Cursor mean "no paging".
type Params struct {
	Limit  int
	Cursor string
}

// Enabled reports whether the caller asked for a page at all.
func (p Params) Enabled() bool {
	return p.Limit > 0 || strings.TrimSpace(p.Cursor) != ""
}

// Cursor marks where the next page starts within an ordered result: the
// offset and the product id found there, so a stale cursor is detected.
type Cursor struct {
	Offset    int
	ProductID int64
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds a base64 cursor string from the provided values.
func EncodeCursor(cursor Cursor) string {
	payload := fmt.Sprintf("%d|%d", cursor.Offset, cursor.ProductID)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// ParseCursor decodes the cursor string back into its components.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid cursor format")
	}

	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return nil, fmt.Errorf("invalid cursor offset %q", parts[0])
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor id: %w", err)
	}
	return &Cursor{Offset: offset, ProductID: id}, nil
}

// Window slices ids, the product ids of an ordered result, into the page
// described by params. It returns the half-open range to keep and the
// cursor for the following page, or nil on the last page.
func Window(ids []int64, params Params) (start, end int, next *Cursor, err error) {
	limit := NormalizeLimit(params.Limit)

	cursor, err := ParseCursor(params.Cursor)
	if err != nil {
		return 0, 0, nil, err
	}
	if cursor != nil {
		if cursor.Offset >= len(ids) || ids[cursor.Offset] != cursor.ProductID {
			return 0, 0, nil, fmt.Errorf("cursor no longer matches the result")
		}
		start = cursor.Offset
	}

	end = start + limit
	if end >= len(ids) {
		return start, len(ids), nil, nil
	}
	return start, end, &Cursor{Offset: end, ProductID: ids[end]}, nil
}

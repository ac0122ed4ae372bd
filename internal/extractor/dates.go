package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/venturecast/venturecast/internal/types"
)

// parsePostDate parses a date value pulled from article markup. Sources
// publish dates in wildly inconsistent formats ("2026-01-15T09:30:00Z",
// "Jan 15, 2026", "15 January 2026"), so parsing is delegated to a
// permissive parser. The result has its zone offset stripped so posts
// compare cleanly against naive range bounds.
func parsePostDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return types.StripZone(t), nil
}

package suggester

import (
	"fmt"
	"strings"
	"time"

	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/storage"

	"github.com/google/uuid"
)

// cursorSep joins the timestamp and ID of a listing cursor.
const cursorSep = "_"

// EncodeCursor formats a listing position as "<RFC3339Nano>_<uuid>".
func EncodeCursor(c storage.Cursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSep + uuid.UUID(c.ID).String()
}

// ParseCursor reverses EncodeCursor. A bare timestamp is accepted and starts
// strictly before that instant. The empty string is the zero Cursor.
func ParseCursor(s string) (storage.Cursor, error) {
	if s == "" {
		return storage.Cursor{}, nil
	}

	ts, id, hasID := strings.Cut(s, cursorSep)
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.Cursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}

	c := storage.Cursor{CreatedAt: createdAt}
	if hasID {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return storage.Cursor{}, fmt.Errorf("could not parse cursor id: %w", err)
		}
		c.ID = domain.SuggestionID(parsed)
	}

	return c, nil
}

package postgres

import (
	"github.com/google/uuid"

	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
)

// parseID maps a malformed id onto ErrNotFound up front, so a lookup with a
// garbage id reads as a clean miss instead of a postgres cast error.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", repo.ErrNotFound
	}
	return u.String(), nil
}

// filterID is the same for optional filter values: a malformed filter matches
// nothing rather than erroring.
func filterID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

package storage

import (
	"fmt"

	"github.com/guttosm/arbpulse/internal/domain/apperr"
)

// upstream tags a datastore failure so that the HTTP layer answers 500.
func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperr.ErrUpstream, err)
}

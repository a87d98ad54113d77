package store

import (
	"errors"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

// sequencer issues per-container request sequence numbers.
//
// A fetch records the number it was issued under; on settlement it applies
// its result only if no newer fetch has been issued since. Callers must
// hold the container mutex around both methods.
type sequencer struct {
	issued uint64
}

func (s *sequencer) next() uint64 {
	s.issued++
	return s.issued
}

func (s *sequencer) current(seq uint64) bool {
	return seq == s.issued
}

// errorMessage maps an operation error to the string stored in a
// container's error field: the server's message for API errors, the
// generic network string for transport failures.
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, shared.ErrNetwork) {
		return shared.ErrNetwork.Error()
	}
	return err.Error()
}

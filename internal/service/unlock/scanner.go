package unlock

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

type capsuleFinder interface {
	FindDuePersonal(ctx context.Context, now time.Time) ([]model.Capsule, error)
	FindCollaborativeWithEntries(ctx context.Context) ([]model.Capsule, error)
}

// Scanner loads unlock candidates. It never writes.
type Scanner struct {
	store capsuleFinder
}

func NewScanner(store capsuleFinder) *Scanner {
	return &Scanner{store: store}
}

// ScanPersonal returns the personal capsules that are due at now.
func (s *Scanner) ScanPersonal(ctx context.Context, now time.Time) ([]model.Capsule, error) {
	capsules, err := s.store.FindDuePersonal(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("scan personal capsules: %w", err)
	}

	due := capsules[:0:0]
	for _, c := range capsules {
		if c.Eligible(now) {
			due = append(due, c)
		}
	}

	return due, nil
}

// ScanCollaborative returns the collaborative capsules that hold at least one entry.
// Entry-level eligibility is left to the Dispatcher.
func (s *Scanner) ScanCollaborative(ctx context.Context) ([]model.Capsule, error) {
	capsules, err := s.store.FindCollaborativeWithEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan collaborative capsules: %w", err)
	}

	candidates := capsules[:0:0]
	for _, c := range capsules {
		if c.Type == model.CapsuleTypeCollaborative && len(c.Entries) > 0 {
			candidates = append(candidates, c)
		}
	}

	return candidates, nil
}

package unlock

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

// Resolver turns a capsule into the list of people to notify.
type Resolver struct {
	users userDirectory
}

func NewResolver(users userDirectory) *Resolver {
	return &Resolver{users: users}
}

// Resolve returns the snapshot when it is non-empty and otherwise the live users
// behind refs. References that no longer resolve, and recipients without an email,
// are skipped. Duplicate addresses are notified once.
//
// An error means the live lookup failed and the caller should try again later.
func (r *Resolver) Resolve(ctx context.Context, snapshot []model.MemberDetail, refs []uuid.UUID) ([]model.MemberDetail, error) {
	if len(snapshot) > 0 {
		return dedupe(snapshot), nil
	}

	if len(refs) == 0 {
		return nil, nil
	}

	users, err := r.users.FindUsersByIDs(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("resolve recipients: %w", err)
	}

	byID := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	live := make([]model.MemberDetail, 0, len(refs))
	for _, id := range refs {
		u, ok := byID[id]
		if !ok {
			zlog.Logger.Warn().Str("user_id", id.String()).Msg("member no longer resolves to a user, skipping")
			continue
		}
		live = append(live, model.MemberDetail{Name: u.Name, Email: u.Email})
	}

	return dedupe(live), nil
}

// Creator resolves the single recipient of a personal capsule.
func (r *Resolver) Creator(ctx context.Context, c model.Capsule) ([]model.MemberDetail, error) {
	return r.Resolve(ctx, nil, []uuid.UUID{c.CreatedBy})
}

// Members resolves the recipients of a collaborative capsule's entries.
func (r *Resolver) Members(ctx context.Context, c model.Capsule) ([]model.MemberDetail, error) {
	return r.Resolve(ctx, c.MemberDetails, c.Members)
}

func dedupe(in []model.MemberDetail) []model.MemberDetail {
	seen := make(map[string]struct{}, len(in))
	out := make([]model.MemberDetail, 0, len(in))

	for _, m := range in {
		key := strings.ToLower(strings.TrimSpace(m.Email))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}

	return out
}

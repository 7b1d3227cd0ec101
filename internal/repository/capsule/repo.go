package capsule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

var ErrCapsuleNotFound = errors.New("capsule not found")

// Repository provides the unlock worker's view of the capsules, capsule_entries,
// capsule_members and users tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new capsule repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindDuePersonal returns personal capsules whose lock date is at or before now and
// which have not been notified yet.
func (r *Repository) FindDuePersonal(ctx context.Context, now time.Time) ([]model.Capsule, error) {
	query := `
		SELECT id, title, created_by, lock_date, notified, created_at
		FROM capsules
		WHERE type = 'personal'
		  AND lock_date IS NOT NULL
		  AND lock_date <= $1
		  AND notified = false;
    `

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due personal capsules: %w", err)
	}
	defer rows.Close()

	var capsules []model.Capsule
	for rows.Next() {
		var (
			c        model.Capsule
			lockDate sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedBy, &lockDate, &c.Notified, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan personal capsule: %w", err)
		}

		c.Type = model.CapsuleTypePersonal
		if lockDate.Valid {
			c.LockDate = &lockDate.Time
		}

		capsules = append(capsules, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate personal capsules: %w", err)
	}

	return capsules, nil
}

// FindCollaborativeWithEntries returns collaborative capsules holding at least one
// entry, with entries (in insertion order) and member ids attached.
func (r *Repository) FindCollaborativeWithEntries(ctx context.Context) ([]model.Capsule, error) {
	query := `
		SELECT c.id, c.title, c.created_by, c.member_details, c.created_at
		FROM capsules c
		WHERE c.type = 'collaborative'
		  AND EXISTS (SELECT 1 FROM capsule_entries e WHERE e.capsule_id = c.id)
		ORDER BY c.created_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find collaborative capsules: %w", err)
	}
	defer rows.Close()

	var (
		capsules []model.Capsule
		ids      []string
		index    = make(map[uuid.UUID]int)
	)
	for rows.Next() {
		var (
			c       model.Capsule
			details []byte
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedBy, &details, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collaborative capsule: %w", err)
		}

		if len(details) > 0 {
			if err := json.Unmarshal(details, &c.MemberDetails); err != nil {
				return nil, fmt.Errorf("failed to decode member details of capsule %s: %w", c.ID, err)
			}
		}

		c.Type = model.CapsuleTypeCollaborative
		index[c.ID] = len(capsules)
		ids = append(ids, c.ID.String())
		capsules = append(capsules, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collaborative capsules: %w", err)
	}

	if len(capsules) == 0 {
		return nil, nil
	}

	if err := r.attachEntries(ctx, ids, index, capsules); err != nil {
		return nil, err
	}

	if err := r.attachMembers(ctx, ids, index, capsules); err != nil {
		return nil, err
	}

	return capsules, nil
}

func (r *Repository) attachEntries(ctx context.Context, ids []string, index map[uuid.UUID]int, capsules []model.Capsule) error {
	query := `
		SELECT id, capsule_id, content, media, lock_date, created_by, member_name, notified, created_at
		FROM capsule_entries
		WHERE capsule_id = ANY($1::uuid[])
		ORDER BY capsule_id, position;
    `

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load capsule entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e        model.MemoryEntry
			media    []byte
			lockDate sql.NullTime
		)
		if err := rows.Scan(
			&e.ID, &e.CapsuleID, &e.Content, &media, &lockDate, &e.CreatedBy, &e.MemberName, &e.Notified, &e.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan capsule entry: %w", err)
		}

		if len(media) > 0 {
			if err := json.Unmarshal(media, &e.Media); err != nil {
				return fmt.Errorf("failed to decode media of entry %s: %w", e.ID, err)
			}
		}

		if lockDate.Valid {
			e.LockDate = &lockDate.Time
		}

		i, ok := index[e.CapsuleID]
		if !ok {
			continue
		}
		capsules[i].Entries = append(capsules[i].Entries, e)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate capsule entries: %w", err)
	}

	return nil
}

func (r *Repository) attachMembers(ctx context.Context, ids []string, index map[uuid.UUID]int, capsules []model.Capsule) error {
	query := `
		SELECT capsule_id, user_id
		FROM capsule_members
		WHERE capsule_id = ANY($1::uuid[]);
    `

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load capsule members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var capsuleID, userID uuid.UUID
		if err := rows.Scan(&capsuleID, &userID); err != nil {
			return fmt.Errorf("failed to scan capsule member: %w", err)
		}

		if i, ok := index[capsuleID]; ok {
			capsules[i].Members = append(capsules[i].Members, userID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate capsule members: %w", err)
	}

	return nil
}

// FindUsersByIDs returns the users that still exist among ids. Missing ids are
// silently absent from the result.
func (r *Repository) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, email
		FROM users
		WHERE id = ANY($1::uuid[]);
    `

	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(strIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// MarkCapsuleNotified flips a personal capsule's notified flag from false to true.
//
// It reports false when the flag was already set (for example by an overlapping
// cycle on another instance) and ErrCapsuleNotFound when the capsule is gone.
func (r *Repository) MarkCapsuleNotified(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE capsules
		SET notified = true
		WHERE id = $1 AND type = 'personal' AND notified = false;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark capsule notified: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 1 {
		return true, nil
	}

	return false, r.ensureCapsuleExists(ctx, id)
}

// MarkEntriesNotified flips the notified flag of the given entries of one capsule in a
// single statement and returns how many entries actually transitioned.
//
// Only the listed entries are touched, so entries appended concurrently through the
// request path keep their own state.
func (r *Repository) MarkEntriesNotified(ctx context.Context, capsuleID uuid.UUID, entryIDs []uuid.UUID) (int64, error) {
	if len(entryIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE capsule_entries
		SET notified = true
		WHERE capsule_id = $1 AND id = ANY($2::uuid[]) AND notified = false;
    `

	strIDs := make([]string, 0, len(entryIDs))
	for _, id := range entryIDs {
		strIDs = append(strIDs, id.String())
	}

	res, err := r.db.ExecContext(ctx, query, capsuleID, pq.Array(strIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to mark entries notified: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return rows, nil
	}

	return 0, r.ensureCapsuleExists(ctx, capsuleID)
}

func (r *Repository) ensureCapsuleExists(ctx context.Context, id uuid.UUID) error {
	query := `
		SELECT 1
		FROM capsules
		WHERE id = $1;
    `

	var one int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCapsuleNotFound
		}

		return fmt.Errorf("failed to check capsule: %w", err)
	}

	return nil
}

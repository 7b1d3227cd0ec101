package capsule

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

const (
	duePersonalSQL = `
		SELECT id, title, created_by, lock_date, notified, created_at
		FROM capsules
		WHERE type = 'personal'
		  AND lock_date IS NOT NULL
		  AND lock_date <= $1
		  AND notified = false;
    `
	collaborativeSQL = `
		SELECT c.id, c.title, c.created_by, c.member_details, c.created_at
		FROM capsules c
		WHERE c.type = 'collaborative'
		  AND EXISTS (SELECT 1 FROM capsule_entries e WHERE e.capsule_id = c.id)
		ORDER BY c.created_at;
    `
	entriesSQL = `
		SELECT id, capsule_id, content, media, lock_date, created_by, member_name, notified, created_at
		FROM capsule_entries
		WHERE capsule_id = ANY($1::uuid[])
		ORDER BY capsule_id, position;
    `
	membersSQL = `
		SELECT capsule_id, user_id
		FROM capsule_members
		WHERE capsule_id = ANY($1::uuid[]);
    `
	usersSQL = `
		SELECT id, name, email
		FROM users
		WHERE id = ANY($1::uuid[]);
    `
	markCapsuleSQL = `
		UPDATE capsules
		SET notified = true
		WHERE id = $1 AND type = 'personal' AND notified = false;
    `
	markEntriesSQL = `
		UPDATE capsule_entries
		SET notified = true
		WHERE capsule_id = $1 AND id = ANY($2::uuid[]) AND notified = false;
    `
	existsSQL = `
		SELECT 1
		FROM capsules
		WHERE id = $1;
    `
)

func TestFindDuePersonal(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now().UTC()
	id, creator := uuid.New(), uuid.New()
	lockDate := now.Add(-time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(duePersonalSQL)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_by", "lock_date", "notified", "created_at"}).
			AddRow(id.String(), "letter to future me", creator.String(), lockDate, false, now.Add(-24*time.Hour)))

	capsules, err := repo.FindDuePersonal(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, capsules, 1)

	c := capsules[0]
	assert.Equal(t, id, c.ID)
	assert.Equal(t, creator, c.CreatedBy)
	assert.Equal(t, model.CapsuleTypePersonal, c.Type)
	require.NotNil(t, c.LockDate)
	assert.True(t, lockDate.Equal(*c.LockDate))
	assert.False(t, c.Notified)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDuePersonal_QueryError(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(duePersonalSQL)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindDuePersonal(context.Background(), time.Now())
	assert.ErrorContains(t, err, "failed to find due personal capsules")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCollaborativeWithEntries(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now().UTC()
	capsuleID, creator := uuid.New(), uuid.New()
	memberA, memberB := uuid.New(), uuid.New()
	entryA, entryB := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(collaborativeSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_by", "member_details", "created_at"}).
			AddRow(capsuleID.String(), "class of 2015", creator.String(),
				[]byte(`[{"name":"Ana","email":"ana@x.com"},{"name":"Bo","email":"bo@x.com"}]`), now))

	mock.ExpectQuery(regexp.QuoteMeta(entriesSQL)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "capsule_id", "content", "media", "lock_date", "created_by", "member_name", "notified", "created_at",
		}).
			AddRow(entryA.String(), capsuleID.String(), "first", []byte(`[{"url":"https://cdn/x.png","type":"image/png"}]`),
				now.Add(-time.Hour), memberA.String(), "Ana", false, now).
			AddRow(entryB.String(), capsuleID.String(), "second", []byte(`[]`), nil, memberB.String(), "Bo", false, now))

	mock.ExpectQuery(regexp.QuoteMeta(membersSQL)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"capsule_id", "user_id"}).
			AddRow(capsuleID.String(), memberA.String()).
			AddRow(capsuleID.String(), memberB.String()))

	capsules, err := repo.FindCollaborativeWithEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, capsules, 1)

	c := capsules[0]
	assert.Equal(t, model.CapsuleTypeCollaborative, c.Type)
	assert.Equal(t, []model.MemberDetail{{Name: "Ana", Email: "ana@x.com"}, {Name: "Bo", Email: "bo@x.com"}}, c.MemberDetails)
	assert.Equal(t, []uuid.UUID{memberA, memberB}, c.Members)
	require.Len(t, c.Entries, 2)
	assert.Equal(t, entryA, c.Entries[0].ID)
	assert.Equal(t, []model.Media{{URL: "https://cdn/x.png", Type: "image/png"}}, c.Entries[0].Media)
	assert.NotNil(t, c.Entries[0].LockDate)
	assert.Nil(t, c.Entries[1].LockDate)
	assert.Equal(t, "Bo", c.Entries[1].MemberName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCollaborativeWithEntries_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(collaborativeSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_by", "member_details", "created_at"}))

	capsules, err := repo.FindCollaborativeWithEntries(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, capsules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUsersByIDs(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(usersSQL)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(id.String(), "Ana", "ana@x.com"))

	users, err := repo.FindUsersByIDs(context.Background(), []uuid.UUID{id, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, []model.User{{ID: id, Name: "Ana", Email: "ana@x.com"}}, users)
	assert.NoError(t, mock.ExpectationsWereMet())

	users, err = repo.FindUsersByIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, users)
}

func TestMarkCapsuleNotified(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(markCapsuleSQL)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkCapsuleNotified(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())

	// already notified: no row transitions, capsule still exists
	mock.ExpectExec(regexp.QuoteMeta(markCapsuleSQL)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(existsSQL)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err = repo.MarkCapsuleNotified(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())

	// capsule deleted meanwhile
	mock.ExpectExec(regexp.QuoteMeta(markCapsuleSQL)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(existsSQL)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	ok, err = repo.MarkCapsuleNotified(context.Background(), id)
	assert.ErrorIs(t, err, ErrCapsuleNotFound)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEntriesNotified(t *testing.T) {
	repo, mock := setupMockDB(t)

	capsuleID := uuid.New()
	entries := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec(regexp.QuoteMeta(markEntriesSQL)).
		WithArgs(capsuleID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkEntriesNotified(context.Background(), capsuleID, entries)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(markEntriesSQL)).
		WithArgs(capsuleID, sqlmock.AnyArg()).
		WillReturnError(errors.New("deadlock detected"))

	_, err = repo.MarkEntriesNotified(context.Background(), capsuleID, entries)
	assert.ErrorContains(t, err, "failed to mark entries notified")
	assert.NoError(t, mock.ExpectationsWereMet())

	n, err = repo.MarkEntriesNotified(context.Background(), capsuleID, nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// CapsuleType distinguishes capsules unlocked as a whole from capsules unlocked entry by entry.
type CapsuleType string

const (
	CapsuleTypePersonal      CapsuleType = "personal"
	CapsuleTypeCollaborative CapsuleType = "collaborative"
)

// Media is an attachment stored in object storage.
type Media struct {
	URL  string `json:"url"`  // public or signed object URL
	Type string `json:"type"` // mime type, e.g. "image/png"
}

// MemberDetail is a name+email snapshot taken when a collaborative capsule is created.
//
// It is also the shape of a resolved notification recipient.
type MemberDetail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is the live user record as seen by the unlock worker.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Capsule represents a time capsule owned by a creator.
type Capsule struct {
	ID            uuid.UUID      `json:"id"`             // unique identifier of the capsule
	Type          CapsuleType    `json:"type"`           // personal or collaborative
	Title         string         `json:"title"`          // capsule (or group) name
	Description   string         `json:"description"`    // optional free text
	Content       string         `json:"content"`        // personal capsule body
	Media         []Media        `json:"media"`          // personal capsule attachments
	LockDate      *time.Time     `json:"lock_date"`      // unlock instant, personal capsules only
	CreatedBy     uuid.UUID      `json:"created_by"`     // creator user id
	Members       []uuid.UUID    `json:"members"`        // member user ids, collaborative only
	MemberDetails []MemberDetail `json:"member_details"` // snapshot of members at creation time
	Entries       []MemoryEntry  `json:"entries"`        // memory entries in insertion order
	Notified      bool           `json:"notified"`       // set once the unlock notification was attempted
	CreatedAt     time.Time      `json:"created_at"`
}

// MemoryEntry is a sub-item of a collaborative capsule with its own unlock instant.
type MemoryEntry struct {
	ID         uuid.UUID  `json:"id"`
	CapsuleID  uuid.UUID  `json:"capsule_id"`
	Content    string     `json:"content"`
	Media      []Media    `json:"media"`
	LockDate   *time.Time `json:"lock_date"`
	CreatedBy  uuid.UUID  `json:"created_by"`
	MemberName string     `json:"member_name"` // author display name snapshot
	Notified   bool       `json:"notified"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Unlocked reports whether an item with the given lock date and flag is due for its
// one-time notification at now.
func Unlocked(lockDate *time.Time, notified bool, now time.Time) bool {
	return lockDate != nil && !lockDate.After(now) && !notified
}

// Eligible reports whether a personal capsule is due for notification.
// Collaborative capsules are never eligible as a whole.
func (c Capsule) Eligible(now time.Time) bool {
	return c.Type == CapsuleTypePersonal && Unlocked(c.LockDate, c.Notified, now)
}

// Eligible reports whether the entry is due for notification.
func (e MemoryEntry) Eligible(now time.Time) bool {
	return Unlocked(e.LockDate, e.Notified, now)
}

// EligibleEntries returns the entries of a collaborative capsule that are due at now,
// in capsule order.
func (c Capsule) EligibleEntries(now time.Time) []MemoryEntry {
	if c.Type != CapsuleTypeCollaborative {
		return nil
	}

	var due []MemoryEntry
	for _, e := range c.Entries {
		if e.Eligible(now) {
			due = append(due, e)
		}
	}

	return due
}

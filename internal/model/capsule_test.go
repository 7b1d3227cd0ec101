package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestUnlocked(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Unlocked(nil, false, now), "nil lock date never unlocks")
	assert.True(t, Unlocked(ptr(now), false, now), "lock date equal to now is due")
	assert.True(t, Unlocked(ptr(now.Add(-time.Minute)), false, now))
	assert.False(t, Unlocked(ptr(now.Add(time.Second)), false, now))
	assert.False(t, Unlocked(ptr(now.Add(-time.Hour)), true, now), "notified items are never due again")
}

func TestCapsule_Eligible(t *testing.T) {
	now := time.Now()

	personal := Capsule{Type: CapsuleTypePersonal, LockDate: ptr(now.Add(-time.Minute))}
	assert.True(t, personal.Eligible(now))

	collab := Capsule{Type: CapsuleTypeCollaborative, LockDate: ptr(now.Add(-time.Minute))}
	assert.False(t, collab.Eligible(now), "capsule-level lock date is ignored for collaborative capsules")
}

func TestCapsule_EligibleEntries(t *testing.T) {
	now := time.Now()

	c := Capsule{
		Type: CapsuleTypeCollaborative,
		Entries: []MemoryEntry{
			{Content: "a", LockDate: ptr(now.Add(-time.Hour))},
			{Content: "b", LockDate: ptr(now.Add(time.Hour))},
			{Content: "c", LockDate: ptr(now.Add(-time.Hour)), Notified: true},
			{Content: "d"},
			{Content: "e", LockDate: ptr(now.Add(-time.Second))},
		},
	}

	due := c.EligibleEntries(now)
	if assert.Len(t, due, 2) {
		assert.Equal(t, "a", due[0].Content)
		assert.Equal(t, "e", due[1].Content)
	}

	c.Type = CapsuleTypePersonal
	assert.Empty(t, c.EligibleEntries(now))
}

func TestCycleReport_Eventful(t *testing.T) {
	assert.False(t, CycleReport{CapsulesScanned: 4}.Eventful())
	assert.True(t, CycleReport{EntriesNotified: 1}.Eventful())
	assert.True(t, CycleReport{SendsFailed: 1}.Eventful())
}

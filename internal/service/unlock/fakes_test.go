package unlock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

// memStore is an in-memory capsule store with the same conditional-update
// semantics as the Postgres repository.
type memStore struct {
	mu       sync.Mutex
	capsules map[uuid.UUID]*model.Capsule
	order    []uuid.UUID
	users    map[uuid.UUID]model.User
}

func newMemStore() *memStore {
	return &memStore{
		capsules: make(map[uuid.UUID]*model.Capsule),
		users:    make(map[uuid.UUID]model.User),
	}
}

func (s *memStore) addUser(name, email string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{ID: uuid.New(), Name: name, Email: email}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addCapsule(c model.Capsule) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i := range c.Entries {
		if c.Entries[i].ID == uuid.Nil {
			c.Entries[i].ID = uuid.New()
		}
		c.Entries[i].CapsuleID = c.ID
	}
	s.capsules[c.ID] = &c
	s.order = append(s.order, c.ID)
	return c.ID
}

func (s *memStore) addEntry(capsuleID uuid.UUID, e model.MemoryEntry) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.New()
	e.CapsuleID = capsuleID
	c := s.capsules[capsuleID]
	c.Entries = append(c.Entries, e)
	return e.ID
}

func (s *memStore) get(id uuid.UUID) model.Capsule {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneCapsule(*s.capsules[id])
}

func cloneCapsule(c model.Capsule) model.Capsule {
	c.Entries = append([]model.MemoryEntry(nil), c.Entries...)
	c.Members = append([]uuid.UUID(nil), c.Members...)
	c.MemberDetails = append([]model.MemberDetail(nil), c.MemberDetails...)
	return c
}

func (s *memStore) FindDuePersonal(_ context.Context, now time.Time) ([]model.Capsule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Capsule
	for _, id := range s.order {
		c := s.capsules[id]
		if c.Type == model.CapsuleTypePersonal && c.LockDate != nil && !c.LockDate.After(now) && !c.Notified {
			out = append(out, cloneCapsule(*c))
		}
	}
	return out, nil
}

func (s *memStore) FindCollaborativeWithEntries(_ context.Context) ([]model.Capsule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Capsule
	for _, id := range s.order {
		c := s.capsules[id]
		if c.Type == model.CapsuleTypeCollaborative && len(c.Entries) > 0 {
			out = append(out, cloneCapsule(*c))
		}
	}
	return out, nil
}

func (s *memStore) MarkCapsuleNotified(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.capsules[id]
	if !ok || c.Type != model.CapsuleTypePersonal || c.Notified {
		return false, nil
	}
	c.Notified = true
	return true, nil
}

func (s *memStore) MarkEntriesNotified(_ context.Context, capsuleID uuid.UUID, entryIDs []uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[uuid.UUID]bool, len(entryIDs))
	for _, id := range entryIDs {
		want[id] = true
	}

	var n int64
	c := s.capsules[capsuleID]
	for i := range c.Entries {
		if want[c.Entries[i].ID] && !c.Entries[i].Notified {
			c.Entries[i].Notified = true
			n++
		}
	}
	return n, nil
}

func (s *memStore) FindUsersByIDs(_ context.Context, ids []uuid.UUID) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type sentMail struct {
	to, subject, body string
}

// recordingNotifier records every send and fails for the configured addresses.
type recordingNotifier struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]bool
}

func (n *recordingNotifier) Send(to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, sentMail{to: to, subject: subject, body: body})
	if n.failTo[to] {
		return errSMTPDown
	}
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.sent)
}

func (n *recordingNotifier) recipients() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, 0, len(n.sent))
	for _, m := range n.sent {
		out = append(out, m.to)
	}
	return out
}

// fixedClock is a manually advanced clock.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fixedClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func at(t time.Time) *time.Time { return &t }

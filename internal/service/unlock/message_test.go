package unlock

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

func TestMessages_Personal(t *testing.T) {
	id := uuid.MustParse("6b1f8a7e-9d2c-4c1e-8f00-3a2b1c0d9e8f")
	m := Messages{FrontendURL: "https://capsule.example/", Signature: "Capsule Team"}

	subject, body := m.Personal(model.Capsule{ID: id, Title: "dear me"}, model.MemberDetail{Name: "Ana", Email: "ana@x.com"})

	assert.Equal(t, "Your Personal Capsule Has Unlocked!", subject)
	assert.Contains(t, body, "Hi Ana,")
	assert.Contains(t, body, `"dear me"`)
	assert.Contains(t, body, "https://capsule.example/capsules/"+id.String())
	assert.Contains(t, body, "You'll need to log in")
	assert.Contains(t, body, "Regards,\nCapsule Team")
}

func TestMessages_EntryUnlocked(t *testing.T) {
	id := uuid.New()
	m := Messages{FrontendURL: "https://capsule.example"}

	c := model.Capsule{ID: id, Title: "reunion"}
	e := model.MemoryEntry{MemberName: "Bo"}

	subject, body := m.EntryUnlocked(c, e, model.MemberDetail{Name: "Ana", Email: "ana@x.com"})

	assert.Equal(t, "Memory Unlocked in Capsule: reunion", subject)
	assert.Contains(t, body, "Hi Ana,")
	assert.Contains(t, body, "added by Bo")
	assert.Contains(t, body, `"reunion"`)
	assert.Contains(t, body, "https://capsule.example/capsules/"+id.String())
	assert.Contains(t, body, "Regards,\nDigital Time Capsule Team")
}

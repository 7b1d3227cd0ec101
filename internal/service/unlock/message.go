package unlock

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

const defaultSignature = "Digital Time Capsule Team"

// Messages renders unlock notification texts.
type Messages struct {
	FrontendURL string // base URL of the web app, capsule links are built from it
	Signature   string
}

func (m Messages) capsuleLink(c model.Capsule) string {
	return fmt.Sprintf("%s/capsules/%s", strings.TrimRight(m.FrontendURL, "/"), c.ID)
}

func (m Messages) signature() string {
	if m.Signature == "" {
		return defaultSignature
	}
	return m.Signature
}

// Personal renders the notification sent to the creator of an unlocked personal capsule.
func (m Messages) Personal(c model.Capsule, to model.MemberDetail) (subject, body string) {
	subject = "Your Personal Capsule Has Unlocked!"
	body = fmt.Sprintf(
		"Hi %s,\n\nYour personal capsule titled %q has unlocked. You can now view its content.\n\n"+
			"Access your capsule here: %s\n\nNote: You'll need to log in to access the capsule.\n\nRegards,\n%s",
		to.Name, c.Title, m.capsuleLink(c), m.signature(),
	)

	return subject, body
}

// EntryUnlocked renders the notification sent to a member when an entry of a
// collaborative capsule unlocks.
func (m Messages) EntryUnlocked(c model.Capsule, e model.MemoryEntry, to model.MemberDetail) (subject, body string) {
	subject = fmt.Sprintf("Memory Unlocked in Capsule: %s", c.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\nA memory added by %s in the collaborative capsule %q has unlocked.\n\n"+
			"You can view it here: %s\n\nNote: You'll need to log in to access the capsule.\n\nRegards,\n%s",
		to.Name, e.MemberName, c.Title, m.capsuleLink(c), m.signature(),
	)

	return subject, body
}

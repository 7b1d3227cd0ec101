// Package report posts unlock cycle summaries to an operations chat.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

//go:generate mockgen -source=telegram.go -destination=../../mocks/service/report/mock.go -package=mocks
type chatSender interface {
	Send(ctx context.Context, chatID, text string) error
}

// TelegramReporter sends a summary of every cycle that unlocked something or failed.
// Quiet cycles are not reported.
type TelegramReporter struct {
	sender chatSender
	chatID string
}

func NewTelegramReporter(sender chatSender, chatID string) *TelegramReporter {
	return &TelegramReporter{sender: sender, chatID: chatID}
}

func (r *TelegramReporter) Report(ctx context.Context, report model.CycleReport) error {
	if !report.Eventful() {
		return nil
	}

	if err := r.sender.Send(ctx, r.chatID, Summary(report)); err != nil {
		return fmt.Errorf("send cycle summary: %w", err)
	}

	return nil
}

// Summary renders report as plain text.
func Summary(report model.CycleReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Unlock cycle %s (%s)\n", report.StartedAt.Format("2006-01-02 15:04:05 MST"), report.Duration().Round(time.Millisecond))
	fmt.Fprintf(&b, "capsules unlocked: %d\n", report.CapsulesNotified)
	fmt.Fprintf(&b, "memories unlocked: %d\n", report.EntriesNotified)
	fmt.Fprintf(&b, "emails: %d sent, %d failed\n", report.SendsAttempted-report.SendsFailed, report.SendsFailed)

	if report.WriteFailures > 0 || report.ScanFailures > 0 || report.Skipped > 0 {
		fmt.Fprintf(&b, "problems: %d scan, %d write, %d skipped\n", report.ScanFailures, report.WriteFailures, report.Skipped)
	}

	return strings.TrimRight(b.String(), "\n")
}

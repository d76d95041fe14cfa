package ws

import (
	"encoding/json"
	"sync/atomic"
)

// Ledger event types streamed to subscribers.
const (
	EventSkillVerified        = "skill.verified"
	EventVerificationRevoked  = "verification.revoked"
	EventJobPosted            = "job.posted"
	EventJobClosed            = "job.closed"
	EventApplicationSubmitted = "application.submitted"
	EventApplicationAccepted  = "application.accepted"
	EventApplicationRejected  = "application.rejected"
)

type LedgerEvent struct {
	Type    string `json:"type"`
	Height  uint64 `json:"height"`
	Subject string `json:"subject,omitempty"`
	ID      uint64 `json:"id,omitempty"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyLedgerEvent broadcasts a transaction outcome. Events fire only
// after the transaction has fully applied; a failed transaction emits
// nothing.
func NotifyLedgerEvent(eventType string, height uint64, subject string, id uint64) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := LedgerEvent{
		Type:    eventType,
		Height:  height,
		Subject: subject,
		ID:      id,
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}

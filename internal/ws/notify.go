package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type RecommendationsReadyEvent struct {
	Type      string `json:"type"`
	Email     string `json:"email"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyRecommendationsReady pushes an event to the candidate's open
// sockets. A nil default hub makes this a no-op.
func NotifyRecommendationsReady(email string, count int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	email = normalizeEmail(email)
	if email == "" {
		return
	}

	evt := RecommendationsReadyEvent{
		Type:      "recommendations_ready",
		Email:     email,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Send(email, b)
}

// HubNotifier adapts the package to the usecase Notifier interface.
type HubNotifier struct{}

func (HubNotifier) RecommendationsReady(email string, count int) {
	NotifyRecommendationsReady(email, count)
}

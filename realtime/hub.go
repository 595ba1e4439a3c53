// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/danielhkuo/vote-service/models"
)

// Subscriber is one connected viewer.
type Subscriber interface {
	ID() string
	// Send queues msg without blocking. It reports false if the message was
	// dropped because the subscriber is gone or backed up.
	Send(msg []byte) bool
}

// Broker tracks which subscribers watch which session and fans updates out
// to them. Delivery is best effort to whoever is connected at the time.
type Broker interface {
	Subscribe(sessionID string, sub Subscriber)
	Unsubscribe(sessionID string, sub Subscriber)
	UnsubscribeAll(sub Subscriber)
	Publish(sessionID string, session models.Session)
}

// Hub is the in-process Broker.
type Hub struct {
	mu sync.RWMutex
	// sessionID -> subscriberID -> subscriber
	channels map[string]map[string]Subscriber
	// subscriberID -> set of sessionIDs
	memberships map[string]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		channels:    make(map[string]map[string]Subscriber),
		memberships: make(map[string]map[string]struct{}),
	}
}

func (h *Hub) Subscribe(sessionID string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.channels[sessionID]
	if !ok {
		members = make(map[string]Subscriber)
		h.channels[sessionID] = members
	}
	members[sub.ID()] = sub

	joined, ok := h.memberships[sub.ID()]
	if !ok {
		joined = make(map[string]struct{})
		h.memberships[sub.ID()] = joined
	}
	joined[sessionID] = struct{}{}
}

func (h *Hub) Unsubscribe(sessionID string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sessionID, sub.ID())
}

// UnsubscribeAll drops sub from every channel it joined.
func (h *Hub) UnsubscribeAll(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sessionID := range h.memberships[sub.ID()] {
		h.remove(sessionID, sub.ID())
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(sessionID, subID string) {
	if members, ok := h.channels[sessionID]; ok {
		delete(members, subID)
		if len(members) == 0 {
			delete(h.channels, sessionID)
		}
	}
	if joined, ok := h.memberships[subID]; ok {
		delete(joined, sessionID)
		if len(joined) == 0 {
			delete(h.memberships, subID)
		}
	}
}

// Publish sends one sessionUpdate event with the full session to every
// current member of the session's channel. A subscriber that cannot take
// the message is skipped.
func (h *Hub) Publish(sessionID string, session models.Session) {
	msg, err := json.Marshal(models.ServerEvent{
		Type:    models.EventSessionUpdate,
		Session: &session,
	})
	if err != nil {
		slog.Error("failed to encode session update", "session_id", sessionID, "error", err)
		return
	}

	h.mu.RLock()
	members := make([]Subscriber, 0, len(h.channels[sessionID]))
	for _, sub := range h.channels[sessionID] {
		members = append(members, sub)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range members {
		if sub.Send(msg) {
			delivered++
			continue
		}
		slog.Warn("dropped session update", "session_id", sessionID, "conn_id", sub.ID())
	}

	slog.Debug("session update published",
		"session_id", sessionID,
		"members", len(members),
		"delivered", delivered,
	)
}

// Members returns how many subscribers currently watch sessionID.
func (h *Hub) Members(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[sessionID])
}

var _ Broker = (*Hub)(nil)

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/vote-service/cliparse"
	"github.com/danielhkuo/vote-service/middleware"
	"github.com/danielhkuo/vote-service/realtime"
)

type RealtimeHandler struct {
	broker   realtime.Broker
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(broker realtime.Broker, cfg cliparse.Config) *RealtimeHandler {
	return &RealtimeHandler{
		broker: broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(cfg.FrontendURL, r.Header.Get("Origin"))
			},
		},
	}
}

// Connect handles GET /ws
// Upgrades to a WebSocket and serves the client until it disconnects
func (h *RealtimeHandler) Connect(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		slog.Warn("websocket upgrade failed",
			"remote", middleware.GetClientIP(r),
			"origin", r.Header.Get("Origin"),
			"error", err,
		)
		return
	}

	realtime.NewClient(conn, h.broker).Run()
}

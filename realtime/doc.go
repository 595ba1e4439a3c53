// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime pushes session updates to connected viewers.

A Hub maps each session ID to the set of subscribers currently watching it.
The session service only sees Publish; the transport behind it can change
without touching the service.

# Protocol

Clients connect over WebSocket and send JSON:

	{"type": "joinSession", "sessionId": "k3j9x0a"}
	{"type": "leaveSession", "sessionId": "k3j9x0a"}

The server pushes one event per accepted vote:

	{"type": "sessionUpdate", "session": { ...full session... }}

and reports bad client messages with:

	{"type": "error", "message": "..."}

A connection may join several sessions. Disconnecting leaves all of them.

# Delivery

Best effort. Each Client has a small send buffer; a full buffer drops the
update for that client only. Clients that reconnect should re-fetch the
session over HTTP instead of relying on pushes.
*/
package realtime

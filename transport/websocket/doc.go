// Package websocket provides WebSocket transport for the Jump'In puzzle.
//
// The websocket package implements:
//   - Real-time state broadcasting to connected clients
//   - Session-aware WebSocket connections
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded and carry the full GameState plus a
// pre-rendered board view after each state change:
//
//	{session_id: "ab12", event: "state_update", game_state: {...}, board_view: "..."}
//
// Clients do not send game commands over the socket; moves go through the
// REST API and the resulting state is pushed to every socket watching the
// same session.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=ab12) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive updates
// simultaneously without blocking each other.
package websocket

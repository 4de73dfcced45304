// Package api provides HTTP REST API handlers for the Jump'In puzzle.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Configuration listing, loading, and saving
//   - Solver and hint endpoints
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id)
//   - GET /api/sessions - List all sessions (sort, order, limit)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Puzzle Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/move - Move a single piece
//   - POST /api/sessions/{id}/bulk-move - Execute a sequence of moves
//   - POST /api/sessions/{id}/solve - Run the solver from the current board
//   - GET /api/sessions/{id}/hint - Next move toward the goal
//   - POST /api/sessions/{id}/reset - Restore the starting layout
//   - GET /api/sessions/{id}/history - Get move history with pagination
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Get a full configuration
//   - POST /api/configs - Save a new configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Moves are sent as POST with JSON
// body:
//
//	{
//	  "piece_id": "b0",
//	  "direction": "up|down|left|right",
//	  "reset": true|false  // optional reset before move
//	}
//
// Bulk moves carry an array of the same shape:
//
//	{
//	  "moves": [{"piece_id": "f0", "direction": "right"}, ...],
//	  "reset": true|false
//	}
//
// Solve takes an optional search mode:
//
//	{"mode": "bfs|dfs"}
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{"error": "error message"}
//
// Illegal moves are not errors: they return 200 with success=false and the
// unchanged board, since rejection is part of the puzzle's reward scheme.
// Solver failures (no solution, budget exhausted, off-path hint) return 422.
package api

// Package mcp provides a Model Context Protocol interface for the Jump'In
// puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - Session-aware command execution
//   - A thin proxy that forwards every call to the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current board state with a rendered grid
//   - move_piece: Execute a single piece move (piece id + direction)
//   - bulk_move: Execute multiple moves in sequence
//   - solve: Run the built-in search and return a full solution path
//   - hint: Get the next move toward the goal
//   - reset_game: Reset the board to its starting layout
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new puzzle session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available puzzle configurations
//   - describe_cell: Inspect a single board cell
//   - game_instructions: Get comprehensive movement rules
//
// Session Management:
//
// Puzzle tools take a session_id parameter so agents can manage multiple
// concurrent sessions independently. Session IDs come from create_session.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Solve puzzles autonomously
//   - Compare their own move sequences against solver output
//   - Analyze board states and plan jumps
//   - Manage multiple puzzle sessions
//   - Learn from move history
package mcp

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jumpin-puzzle/jumpin/game/engine"
	"github.com/jumpin-puzzle/jumpin/game/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Jump'In Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Jump'In Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PUZZLE OBJECTIVE:
Move pieces until every bunny sits on a goal cell (*). Mushrooms never move,
bunnies jump over occupied cells, and foxes slide one cell along their own axis.

AVAILABLE TOOLS:
- game_state: Get current board state with a rendered grid
- move_piece: Move one piece (piece id + direction) - requires intent explanation
- bulk_move: Multiple moves at once - requires intent explanation
- solve: Run the built-in search and return a full solution path
- hint: Get the next move toward the goal from the current position
- reset_game: Reset the board to its starting layout
- move_history: View past moves
- create_session: Create new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available puzzle configurations
- describe_cell: Get detailed info about a specific board cell
- game_instructions: Get comprehensive movement rules

NOTE: The 'intent' parameter on move_piece/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Puzzle operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board state with a rendered grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_piece",
		Description: "Move a piece in a direction. Bunnies jump over occupied cells, foxes slide one cell along their own axis, mushrooms never move.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"piece_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the piece to move (e.g. b0, f1)",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to move",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before moving",
				},
			},
			Required: []string{"session_id", "piece_id", "direction"},
		},
	}, c.handleMovePiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute multiple moves in sequence. Stops at the first illegal move or when the puzzle is solved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"piece_id": map[string]interface{}{
								"type":        "string",
								"description": "ID of the piece to move",
							},
							"direction": map[string]interface{}{
								"type": "string",
								"enum": []string{"up", "down", "left", "right"},
							},
						},
						"required": []string{"piece_id", "direction"},
					},
					"description": "Array of moves, each with piece_id and direction",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before moving",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve",
		Description: "Run the built-in solver from the current board and return the full solution path",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"mode": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"bfs", "dfs"},
					"description": "Search mode; bfs finds a shortest path (default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolve)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "hint",
		Description: "Get the next move toward the goal from the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHint)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the board to its starting layout",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific board cell: which piece occupies it (if any), whether it is a goal cell, and whether a bunny could land there.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the cell to describe (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleDescribeCell)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive puzzle rules and movement mechanics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMovePiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	pieceID, _ := args["piece_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"piece_id":  pieceID,
		"direction": direction,
		"reset":     reset,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	// Convert moves to request objects
	moves := make([]map[string]string, 0, len(movesRaw))
	for _, m := range movesRaw {
		entry, ok := m.(map[string]interface{})
		if !ok {
			continue
		}
		pieceID, _ := entry["piece_id"].(string)
		direction, _ := entry["direction"].(string)
		moves = append(moves, map[string]string{
			"piece_id":  pieceID,
			"direction": direction,
		})
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkMoveResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	mode, _ := args["mode"].(string)

	body := map[string]interface{}{}
	if mode != "" {
		body["mode"] = mode
	}

	var result service.SolveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/solve", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatSolveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var hint service.HintResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/hint", sessionID), nil, &hint)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Hint: move %s %s\n%s\n\n%s",
		hint.Move.PieceID, hint.Move.Direction, hint.Message, formatGameState(hint.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the history
		result := formatHistory(&history)
		return mcp.NewToolResultText(result), nil
	}

	result := formatHistory(&history)
	result += "\n" + formatCurrentSegment(session.GameState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Board: %dx%d, Bunnies: %d, Foxes: %d\n\n",
			config.Name, config.Description, config.BoardSize, config.BoardSize,
			config.NumBunnies, config.NumFoxes)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	x := int(args["x"].(float64))
	y := int(args["y"].(float64))

	// Get the current game state to access the board
	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if state.Board == nil {
		return mcp.NewToolResultError("no board in session state"), nil
	}

	// Check bounds
	size := state.Board.Size
	if x < 0 || x >= size || y < 0 || y >= size {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Board size is %dx%d (0-%d for both x and y)",
			x, y, size, size, size-1)), nil
	}

	pos := engine.Position{X: x, Y: y}

	// Find the occupying piece, if any
	var occupant *engine.Piece
	for _, p := range state.Board.Pieces() {
		piece := p
		for _, cell := range piece.Cells() {
			if cell == pos {
				occupant = &piece
			}
		}
	}

	goal := false
	for _, g := range state.Board.Goals {
		if g == pos {
			goal = true
		}
	}

	var cellChar, cellType, description string
	if occupant != nil {
		cellChar = occupant.ID
		switch occupant.Kind {
		case engine.Mushroom:
			cellType = "Mushroom"
			description = "Fixed obstacle - never moves, but bunnies can jump over it"
		case engine.Bunny:
			cellType = "Bunny"
			description = "Moves by jumping over an unbroken run of occupied cells to the first empty cell beyond"
		case engine.Fox:
			cellType = "Fox"
			description = fmt.Sprintf("Two-cell piece oriented %s - slides exactly one cell along its own axis", occupant.Orientation)
		}
	} else if goal {
		cellChar = "*"
		cellType = "Goal (empty)"
		description = "Empty goal cell - the puzzle is solved when every bunny sits on a goal cell"
	} else {
		cellChar = "."
		cellType = "Empty"
		description = "Empty cell - a fox can slide into it, or a bunny can land here after a jump"
	}
	if occupant != nil && goal {
		cellType += " (on goal cell)"
	}

	result := fmt.Sprintf(`Cell at position (%d, %d):
Character: %s
Type: %s
Goal cell: %v
Occupied: %v
Description: %s`,
		x, y, cellChar, cellType, goal, occupant != nil, description)

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Jump'In Puzzle - Complete Instructions

PUZZLE OBJECTIVE:
Rearrange the pieces until every bunny occupies a goal cell. The board is a
small square grid; pieces never overlap and never leave the board.

PIECE TYPES:
• Mushroom (m0, m1, ...): Fixed obstacle. Occupies one cell and NEVER moves.
• Bunny (b0, b1, ...): Occupies one cell. Moves ONLY by jumping: the adjacent
  cell in the chosen direction must be occupied, and the bunny flies over the
  whole unbroken run of occupied cells, landing on the FIRST empty cell beyond
  it. If the run reaches the board edge before an empty cell, the jump is
  illegal. If the adjacent cell is empty, the move is illegal (bunnies cannot
  step, only jump).
• Fox (f0, f1, ...): Occupies two cells in a row or column. Slides exactly ONE
  cell per move, and only along its own axis (a horizontal fox moves left or
  right, a vertical fox moves up or down). The target cell must be empty and
  on the board.

GRID LEGEND:
• Piece IDs (b0, f1, m0, ...) mark occupied cells
• . - empty cell
• * - empty goal cell (goal cells under pieces are not shown)

STRATEGY NOTES:
• Bunnies need something to jump over: position foxes to build runways.
• Fox slides are always reversible; bunny jumps usually are too, since the run
  jumped over does not move.
• Use the hint tool when stuck, or solve to see a full shortest path (bfs mode).
• Moves that fail leave the board unchanged, so experimentation is safe, but
  each illegal move costs reward.

REWARDS:
• Solving move: +100
• Legal move: -1
• Illegal move: -10

MOVEMENT COMMANDS:
- move_piece with a piece id and direction (up, down, left, right)
- bulk_move executes a list of moves and stops at the first illegal one
- reset_game restores the starting layout (cumulative history is kept)

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and configuration

Good luck solving the puzzle!`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header (include cumulative total moves)
	result.WriteString(fmt.Sprintf("Config: %s | Reward: %d | Moves: %d\n\n",
		state.ConfigName, state.TotalReward, state.TotalMoves))

	if state.Board != nil {
		result.WriteString(state.Board.String())
	}

	if state.Solved {
		result.WriteString("\nSOLVED! Every bunny is on a goal cell.")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = "✗ Move failed\n"
	}

	response += fmt.Sprintf("Reward: %+d\n", result.Reward)

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	if len(result.PossibleMoves) > 0 {
		parts := make([]string, len(result.PossibleMoves))
		for i, m := range result.PossibleMoves {
			parts[i] = m.String()
		}
		response += "Possible moves: " + strings.Join(parts, ", ") + "\n"
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	// Session header
	boardSize := 0
	configName := ""
	if result.GameState != nil {
		configName = result.GameState.ConfigName
		if result.GameState.Board != nil {
			boardSize = result.GameState.Board.Size
		}
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s • Board: %dx%d\n",
		sessionID, configName, boardSize, boardSize))

	// Bulk summary
	b.WriteString(fmt.Sprintf("Executed %d/%d moves (reward %+d)\n",
		result.MovesExecuted, result.RequestedMoves, result.RewardDelta))
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped on move %d: %s\n", result.StoppedOnMove, result.StoppedReason))
	}

	// Events
	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	// Recent steps: last N entries from current segment where N = moves_executed
	if result.GameState != nil && result.MovesExecuted > 0 {
		steps := getRecentSteps(result.GameState, result.MovesExecuted)
		if len(steps) > 0 {
			b.WriteString("\nRecent steps (this call):\n")
			for i, s := range steps {
				b.WriteString(formatStepLine(i+1, s))
			}
		}
	}

	// Full state at the end
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatSolveResult(result *service.SolveResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Solver run %s (%s): %d moves, %d states visited in %s\n\n",
		result.RunID, result.Mode, result.PathLength, result.StatesVisited, result.Duration))

	for i, m := range result.Moves {
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, m.PieceID, m.Direction))
	}

	if result.FinalView != "" {
		b.WriteString("\nFinal board:\n")
		b.WriteString(result.FinalView)
	}
	return b.String()
}

// getRecentSteps returns the last N entries from CurrentMoves
func getRecentSteps(state *engine.GameState, n int) []engine.MoveHistoryEntry {
	total := len(state.CurrentMoves)
	if total == 0 || n <= 0 {
		return nil
	}
	if n > total {
		n = total
	}
	return state.CurrentMoves[total-n:]
}

// formatStepLine renders a single compact step line
func formatStepLine(idx int, entry engine.MoveHistoryEntry) string {
	status := "✗"
	if entry.Success {
		status = "✓"
	}
	return fmt.Sprintf("%d. %s %s (%d,%d)→(%d,%d) reward=%+d %s\n",
		idx, entry.PieceID, entry.Direction,
		entry.From.X, entry.From.Y, entry.To.X, entry.To.Y,
		entry.Reward, status)
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, move := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		result += fmt.Sprintf("%d. %s %s %s [Reward: %+d]\n",
			num, move.PieceID, move.Direction, status, move.Reward)
	}

	return result
}

func formatCurrentSegment(state *engine.GameState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	moves := state.CurrentMoves
	total := state.CurrentMovesCount
	header := fmt.Sprintf("Current Move Segment — Moves: %d\n\n", total)
	if len(moves) == 0 {
		return header + "(no moves in current segment)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, move := range moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		b.WriteString(fmt.Sprintf("%d. %s %s %s [Reward: %+d]\n",
			i+1, move.PieceID, move.Direction, status, move.Reward))
	}
	return b.String()
}

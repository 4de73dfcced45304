package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jumpin-puzzle/jumpin/game/engine"
	"github.com/jumpin-puzzle/jumpin/game/service"
	"github.com/mark3labs/mcp-go/mcp"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":           "test-session",
		"total_reward": float64(-3),
		"solved":       false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_DecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil || err.Error() != "session not found" {
		t.Errorf("Expected decoded error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "ab12",
			ConfigName: "classic",
			GameState:  engine.InitGameStateFromConfig(nil),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleSolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/solve" {
			t.Errorf("Expected POST /api/sessions/ab12/solve, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SolveResult{
			RunID:         "run-1",
			Mode:          engine.BreadthFirst,
			Moves:         []engine.Move{{PieceID: "b0", Direction: engine.Right}},
			PathLength:    1,
			StatesVisited: 2,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "solve",
			Arguments: map[string]interface{}{"session_id": "ab12", "mode": "bfs"},
		},
	}

	result, err := client.handleSolve(context.Background(), request)
	if err != nil {
		t.Fatalf("handleSolve failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	if !strings.Contains(resultStr.Text, "1. b0 right") {
		t.Errorf("Expected solution path in result, got: %s", resultStr.Text)
	}
}

func TestFormatGameState(t *testing.T) {
	state := engine.InitGameStateFromConfig(nil)
	state.TotalReward = -3
	state.TotalMoves = 3
	state.Message = "Welcome to the puzzle!"

	result := formatGameState(state)

	expectedFields := []string{
		"Config: Classic",
		"Reward: -3",
		"Moves: 3",
		"Welcome to the puzzle!",
		"b0", // board render includes piece IDs
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Solved(t *testing.T) {
	state := engine.InitGameStateFromConfig(nil)
	state.Solved = true

	result := formatGameState(state)

	if !strings.Contains(result, "SOLVED!") {
		t.Errorf("Expected 'SOLVED!' in result, got: %s", result)
	}
}

func TestFormatGameState_Nil(t *testing.T) {
	if got := formatGameState(nil); got != "No game state available" {
		t.Errorf("formatGameState(nil) = %q", got)
	}
}

func TestFormatMoveResult(t *testing.T) {
	moveResult := &service.MoveResult{
		Success:   true,
		Message:   "Moved successfully",
		Reward:    -1,
		GameState: engine.InitGameStateFromConfig(nil),
	}

	result := formatMoveResult(moveResult)

	expectedFields := []string{
		"✓ Move successful",
		"Reward: -1",
		"Config: Classic",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatMoveResult_Failed(t *testing.T) {
	moveResult := &service.MoveResult{
		Success:   false,
		Message:   "Bunnies cannot step into empty cells",
		Reward:    -10,
		GameState: engine.InitGameStateFromConfig(nil),
	}

	result := formatMoveResult(moveResult)

	if !strings.Contains(result, "✗ Move failed") {
		t.Errorf("Expected '✗ Move failed' in result, got: %s", result)
	}
}

func TestClient_handleDescribeCell(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(engine.InitGameStateFromConfig(nil))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	describe := func(x, y int) string {
		t.Helper()
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "describe_cell",
				Arguments: map[string]interface{}{
					"session_id": "ab12",
					"x":          float64(x),
					"y":          float64(y),
				},
			},
		}
		result, err := client.handleDescribeCell(context.Background(), request)
		if err != nil {
			t.Fatalf("handleDescribeCell failed: %v", err)
		}
		text, ok := result.Content[0].(mcp.TextContent)
		if !ok {
			t.Fatal("Expected text content in result")
		}
		return text.Text
	}

	// Classic board has bunny b0 at (3,1)
	if got := describe(3, 1); !strings.Contains(got, "Bunny") || !strings.Contains(got, "b0") {
		t.Errorf("Expected bunny description at (3,1), got: %s", got)
	}

	if got := describe(0, 0); !strings.Contains(got, "Goal") {
		t.Errorf("Expected empty goal cell description at (0,0), got: %s", got)
	}

	// Out of bounds reports an error result
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "describe_cell",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"x":          float64(9),
				"y":          float64(9),
			},
		},
	}
	result, err := client.handleDescribeCell(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDescribeCell failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result for out-of-bounds cell")
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Jump'In Puzzle - Complete Instructions",
		"PUZZLE OBJECTIVE:",
		"PIECE TYPES:",
		"GRID LEGEND:",
		"STRATEGY NOTES:",
		"REWARDS:",
		"MOVEMENT COMMANDS:",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	history := &service.HistoryResponse{
		Moves: []engine.MoveHistoryEntry{
			{PieceID: "b0", Direction: engine.Right, Reward: -1, Success: true},
			{PieceID: "b1", Direction: engine.Up, Reward: -10, Success: false},
		},
		TotalMoves: 2,
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
	}

	result := formatHistory(history)

	if !strings.Contains(result, "1. b0 right ✓") {
		t.Errorf("Expected successful move line, got: %s", result)
	}
	if !strings.Contains(result, "2. b1 up ✗") {
		t.Errorf("Expected failed move line, got: %s", result)
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}

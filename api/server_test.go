package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jumpin-puzzle/jumpin/game/engine"
	"github.com/jumpin-puzzle/jumpin/game/service"
	"github.com/jumpin-puzzle/jumpin/transport/websocket"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	// Session Management
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	// Game Operations
	MoveFunc     func(ctx context.Context, sessionID, pieceID, direction string, reset bool) (*service.MoveResult, error)
	BulkMoveFunc func(ctx context.Context, sessionID string, moves []service.MoveRequest, reset bool) (*service.BulkMoveResult, error)
	ResetFunc    func(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Solving
	SolveFunc func(ctx context.Context, sessionID, mode string) (*service.SolveResult, error)
	HintFunc  func(ctx context.Context, sessionID string) (*service.HintResult, error)

	// Game State
	GetGameStateFunc   func(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)

	// Configuration
	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

// Session Management
func (m *MockGameService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "test-session",
		ConfigName: configName,
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "test-config",
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

// Game Operations
func (m *MockGameService) Move(ctx context.Context, sessionID, pieceID, direction string, reset bool) (*service.MoveResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, pieceID, direction, reset)
	}
	return &service.MoveResult{
		Success:   true,
		GameState: &engine.GameState{},
	}, nil
}

func (m *MockGameService) BulkMove(ctx context.Context, sessionID string, moves []service.MoveRequest, reset bool) (*service.BulkMoveResult, error) {
	if m.BulkMoveFunc != nil {
		return m.BulkMoveFunc(ctx, sessionID, moves, reset)
	}
	return &service.BulkMoveResult{
		Success:   true,
		GameState: &engine.GameState{},
	}, nil
}

func (m *MockGameService) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	return &engine.GameState{}, nil
}

// Solving
func (m *MockGameService) Solve(ctx context.Context, sessionID, mode string) (*service.SolveResult, error) {
	if m.SolveFunc != nil {
		return m.SolveFunc(ctx, sessionID, mode)
	}
	return &service.SolveResult{
		RunID: "run-test",
		Mode:  engine.BreadthFirst,
	}, nil
}

func (m *MockGameService) Hint(ctx context.Context, sessionID string) (*service.HintResult, error) {
	if m.HintFunc != nil {
		return m.HintFunc(ctx, sessionID)
	}
	return &service.HintResult{
		Move: engine.Move{PieceID: "b0", Direction: engine.Right},
	}, nil
}

// Game State
func (m *MockGameService) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.GetGameStateFunc != nil {
		return m.GetGameStateFunc(ctx, sessionID)
	}
	return &engine.GameState{}, nil
}

func (m *MockGameService) GetMoveHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetMoveHistoryFunc != nil {
		return m.GetMoveHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{
		Moves:      []engine.MoveHistoryEntry{},
		TotalMoves: 0,
		Page:       opts.Page,
		PageSize:   opts.Limit,
		TotalPages: 1,
	}, nil
}

// Configuration
func (m *MockGameService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{}, nil
}

func (m *MockGameService) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return &engine.PuzzleConfig{
		Name:        configName,
		Description: "Test config",
	}, nil
}

func (m *MockGameService) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

// Test helpers
func setupTestServer(mockService *MockGameService) *Server {
	hub := websocket.NewHub()
	go hub.Run()
	return NewServer(mockService, hub)
}

func makeRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
}

// Session Management Tests

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Create session with default config",
			requestBody: nil,
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return &service.SessionInfo{
						ID:             "ab12",
						ConfigName:     "Classic",
						CreatedAt:      time.Now(),
						LastAccessedAt: time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ID != "ab12" {
					t.Errorf("Expected session ID ab12, got %s", resp.ID)
				}
			},
		},
		{
			name:        "Create session with specific config",
			requestBody: map[string]string{"config_id": "trivial"},
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					if configName != "trivial" {
						t.Errorf("Expected config name 'trivial', got %s", configName)
					}
					return &service.SessionInfo{
						ID:         "cd34",
						ConfigName: configName,
						CreatedAt:  time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ConfigName != "trivial" {
					t.Errorf("Expected config name 'trivial', got %s", resp.ConfigName)
				}
			},
		},
		{
			name:        "Legacy config_name parameter still works",
			requestBody: map[string]string{"config_name": "classic"},
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					if configName != "classic" {
						t.Errorf("Expected config name 'classic', got %s", configName)
					}
					return &service.SessionInfo{ID: "ef56", ConfigName: configName}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "Handle service error",
			requestBody: nil,
			setupMock: func(m *MockGameService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("service error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "service error" {
					t.Errorf("Expected error message 'service error', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions", tt.requestBody)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestListSessions(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "List multiple sessions",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return []*service.SessionInfo{
						{ID: "ab12", ConfigName: "Classic"},
						{ID: "cd34", ConfigName: "Trivial"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["count"].(float64) != 2 {
					t.Errorf("Expected count 2, got %v", resp["count"])
				}
				sessions := resp["sessions"].([]interface{})
				if len(sessions) != 2 {
					t.Errorf("Expected 2 sessions, got %d", len(sessions))
				}
			},
		},
		{
			name: "Handle empty session list",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return []*service.SessionInfo{}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["count"].(float64) != 0 {
					t.Errorf("Expected count 0, got %v", resp["count"])
				}
			},
		},
		{
			name: "Handle service error",
			setupMock: func(m *MockGameService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return nil, fmt.Errorf("storage error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions", nil)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestListSessionsSorting(t *testing.T) {
	base := time.Now()
	mockService := &MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{
				{ID: "old", CreatedAt: base.Add(-2 * time.Hour), LastAccessedAt: base.Add(-2 * time.Hour)},
				{ID: "new", CreatedAt: base, LastAccessedAt: base},
				{ID: "mid", CreatedAt: base.Add(-time.Hour), LastAccessedAt: base.Add(-time.Hour)},
			}, nil
		},
	}

	server := setupTestServer(mockService)
	w := httptest.NewRecorder()
	req := makeRequest("GET", "/api/sessions?sort=created&order=asc&limit=2", nil)

	server.ServeHTTP(w, req)

	var resp struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	parseResponse(t, w, &resp)

	if resp.Count != 2 {
		t.Fatalf("Expected 2 sessions after limit, got %d", resp.Count)
	}
	if resp.Sessions[0].ID != "old" || resp.Sessions[1].ID != "mid" {
		t.Errorf("Unexpected sort order: %s, %s", resp.Sessions[0].ID, resp.Sessions[1].ID)
	}
}

func TestGetSession(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockGameService)
		expectedStatus int
	}{
		{
			name:      "Get existing session",
			sessionID: "ab12",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return &service.SessionInfo{
						ID:         sessionID,
						ConfigName: "Classic",
						CreatedAt:  time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "Session not found",
			sessionID: "nonexistent",
			setupMock: func(m *MockGameService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions/"+tt.sessionID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetSession(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestDeleteSession(t *testing.T) {
	mockService := &MockGameService{
		DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
			if sessionID != "ab12" {
				return fmt.Errorf("session not found")
			}
			return nil
		},
	}

	server := setupTestServer(mockService)

	t.Run("Delete existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("DELETE", "/api/sessions/ab12", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("Delete unknown session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("DELETE", "/api/sessions/zzzz", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// Game Operation Tests

func TestMove(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Successful move",
			requestBody: map[string]interface{}{"piece_id": "b0", "direction": "right"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, pieceID, direction string, reset bool) (*service.MoveResult, error) {
					if pieceID != "b0" || direction != "right" {
						t.Errorf("Unexpected move %s %s", pieceID, direction)
					}
					return &service.MoveResult{
						Success:   true,
						Reward:    engine.RewardLegal,
						GameState: engine.InitGameStateFromConfig(nil),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if !resp.Success {
					t.Error("Expected successful move")
				}
				if resp.Reward != engine.RewardLegal {
					t.Errorf("Expected reward %d, got %d", engine.RewardLegal, resp.Reward)
				}
			},
		},
		{
			name:        "Illegal move returns 200 with failure payload",
			requestBody: map[string]interface{}{"piece_id": "b0", "direction": "up"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, pieceID, direction string, reset bool) (*service.MoveResult, error) {
					return &service.MoveResult{
						Success:   false,
						Reward:    engine.RewardIllegal,
						Message:   "That move is not legal.",
						GameState: engine.InitGameStateFromConfig(nil),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if resp.Success {
					t.Error("Expected failed move")
				}
			},
		},
		{
			name:        "Move with reset flag",
			requestBody: map[string]interface{}{"piece_id": "f0", "direction": "right", "reset": true},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, pieceID, direction string, reset bool) (*service.MoveResult, error) {
					if !reset {
						t.Error("Expected reset flag to be passed through")
					}
					return &service.MoveResult{Success: true, GameState: engine.InitGameStateFromConfig(nil)}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid request body",
			requestBody:    nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Service error",
			requestBody: map[string]interface{}{"piece_id": "b0", "direction": "right"},
			setupMock: func(m *MockGameService) {
				m.MoveFunc = func(ctx context.Context, sessionID, pieceID, direction string, reset bool) (*service.MoveResult, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()

			var req *http.Request
			if tt.requestBody == nil {
				// Malformed body
				req = httptest.NewRequest("POST", "/api/sessions/ab12/move", bytes.NewBufferString("{invalid"))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = makeRequest("POST", "/api/sessions/ab12/move", tt.requestBody)
			}

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestBulkMove(t *testing.T) {
	mockService := &MockGameService{
		BulkMoveFunc: func(ctx context.Context, sessionID string, moves []service.MoveRequest, reset bool) (*service.BulkMoveResult, error) {
			if len(moves) != 2 {
				t.Errorf("Expected 2 moves, got %d", len(moves))
			}
			if moves[0].PieceID != "f0" || moves[0].Direction != "right" {
				t.Errorf("Unexpected first move: %+v", moves[0])
			}
			return &service.BulkMoveResult{
				MovesExecuted:  1,
				RequestedMoves: 2,
				Success:        false,
				StoppedOnMove:  2,
				StoppedReason:  "illegal move",
				GameState:      engine.InitGameStateFromConfig(nil),
			}, nil
		},
	}

	server := setupTestServer(mockService)
	w := httptest.NewRecorder()
	req := makeRequest("POST", "/api/sessions/ab12/bulk-move", map[string]interface{}{
		"moves": []map[string]string{
			{"piece_id": "f0", "direction": "right"},
			{"piece_id": "b0", "direction": "up"},
		},
	})

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp service.BulkMoveResult
	parseResponse(t, w, &resp)
	if resp.MovesExecuted != 1 || resp.StoppedOnMove != 2 {
		t.Errorf("Unexpected bulk result: %+v", resp)
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*MockGameService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Solve with explicit mode",
			requestBody: map[string]interface{}{"mode": "dfs"},
			setupMock: func(m *MockGameService) {
				m.SolveFunc = func(ctx context.Context, sessionID, mode string) (*service.SolveResult, error) {
					if mode != "dfs" {
						t.Errorf("Expected mode dfs, got %s", mode)
					}
					return &service.SolveResult{
						RunID:         "run-1",
						Mode:          engine.DepthFirst,
						Moves:         []engine.Move{{PieceID: "b0", Direction: engine.Right}},
						PathLength:    1,
						StatesVisited: 2,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SolveResult
				parseResponse(t, w, &resp)
				if resp.PathLength != 1 || len(resp.Moves) != 1 {
					t.Errorf("Unexpected solve result: %+v", resp)
				}
			},
		},
		{
			name:        "Unsolvable board",
			requestBody: nil,
			setupMock: func(m *MockGameService) {
				m.SolveFunc = func(ctx context.Context, sessionID, mode string) (*service.SolveResult, error) {
					return nil, fmt.Errorf("this puzzle has no solution")
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGameService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions/ab12/solve", tt.requestBody)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestHint(t *testing.T) {
	t.Run("Hint available", func(t *testing.T) {
		mockService := &MockGameService{
			HintFunc: func(ctx context.Context, sessionID string) (*service.HintResult, error) {
				return &service.HintResult{
					Move:    engine.Move{PieceID: "b0", Direction: engine.Right},
					Message: "Try jumping b0 right.",
				}, nil
			},
		}

		server := setupTestServer(mockService)
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/sessions/ab12/hint", nil)

		server.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp service.HintResult
		parseResponse(t, w, &resp)
		if resp.Move.PieceID != "b0" {
			t.Errorf("Expected hint for b0, got %+v", resp.Move)
		}
	})

	t.Run("No hint for off-path state", func(t *testing.T) {
		mockService := &MockGameService{
			HintFunc: func(ctx context.Context, sessionID string) (*service.HintResult, error) {
				return nil, fmt.Errorf("no policy entry for this state")
			},
		}

		server := setupTestServer(mockService)
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/sessions/ab12/hint", nil)

		server.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected status 422, got %d", w.Code)
		}
	})
}

func TestReset(t *testing.T) {
	mockService := &MockGameService{
		ResetFunc: func(ctx context.Context, sessionID string) (*engine.GameState, error) {
			if sessionID != "ab12" {
				return nil, fmt.Errorf("session not found")
			}
			return engine.InitGameStateFromConfig(nil), nil
		},
	}

	server := setupTestServer(mockService)

	t.Run("Reset existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/sessions/ab12/reset", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		parseResponse(t, w, &resp)
		if resp["message"] != "Puzzle reset successfully" {
			t.Errorf("Unexpected message: %v", resp["message"])
		}
		if resp["state"] == nil {
			t.Error("Expected state in reset response")
		}
	})

	t.Run("Reset unknown session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/sessions/zzzz/reset", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestGetHistory(t *testing.T) {
	mockService := &MockGameService{
		GetMoveHistoryFunc: func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
			if opts.Page != 2 || opts.Limit != 5 || opts.Order != "asc" {
				t.Errorf("Unexpected history options: %+v", opts)
			}
			return &service.HistoryResponse{
				Moves: []engine.MoveHistoryEntry{
					{PieceID: "b0", Direction: engine.Right, Success: true},
				},
				TotalMoves: 6,
				Page:       opts.Page,
				PageSize:   opts.Limit,
				TotalPages: 2,
			}, nil
		},
	}

	server := setupTestServer(mockService)
	w := httptest.NewRecorder()
	req := makeRequest("GET", "/api/sessions/ab12/history?page=2&limit=5&order=asc", nil)

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp service.HistoryResponse
	parseResponse(t, w, &resp)
	if resp.TotalMoves != 6 || len(resp.Moves) != 1 {
		t.Errorf("Unexpected history response: %+v", resp)
	}
}

func TestGetGameState(t *testing.T) {
	mockService := &MockGameService{
		GetGameStateFunc: func(ctx context.Context, sessionID string) (*engine.GameState, error) {
			if sessionID != "ab12" {
				return nil, fmt.Errorf("session not found")
			}
			return engine.InitGameStateFromConfig(nil), nil
		},
	}

	server := setupTestServer(mockService)

	t.Run("Existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/sessions/ab12/state", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var state engine.GameState
		parseResponse(t, w, &state)
		if state.Board == nil || state.Board.Size != 5 {
			t.Errorf("Unexpected board in state: %+v", state.Board)
		}
	})

	t.Run("Unknown session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/sessions/zzzz/state", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// Configuration Tests

func TestListConfigs(t *testing.T) {
	mockService := &MockGameService{
		ListConfigsFunc: func(ctx context.Context) ([]*service.ConfigInfo, error) {
			return []*service.ConfigInfo{
				{ConfigID: "classic", Name: "Classic", BoardSize: 5, NumBunnies: 3, NumFoxes: 2},
				{ConfigID: "trivial", Name: "Trivial", BoardSize: 3, NumBunnies: 1},
			}, nil
		},
	}

	server := setupTestServer(mockService)
	w := httptest.NewRecorder()
	req := makeRequest("GET", "/api/configs", nil)

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var configs []*service.ConfigInfo
	parseResponse(t, w, &configs)
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}
	if configs[0].ConfigID != "classic" {
		t.Errorf("Unexpected first config: %+v", configs[0])
	}
}

func TestGetConfig(t *testing.T) {
	mockService := &MockGameService{
		LoadConfigFunc: func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
			if configName != "classic" {
				return nil, fmt.Errorf("config not found")
			}
			return engine.DefaultPuzzleConfig(), nil
		},
	}

	server := setupTestServer(mockService)

	t.Run("Existing config", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/configs/classic", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var config engine.PuzzleConfig
		parseResponse(t, w, &config)
		if config.Name != "Classic" || config.BoardSize != 5 {
			t.Errorf("Unexpected config: %+v", config)
		}
	})

	t.Run("Extension is stripped", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/configs/classic.json", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("Unknown config", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("GET", "/api/configs/missing", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestCreateConfig(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		saved := false
		mockService := &MockGameService{
			SaveConfigFunc: func(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
				saved = true
				if configName != "Classic" {
					t.Errorf("Expected config name Classic, got %s", configName)
				}
				return nil
			},
		}

		server := setupTestServer(mockService)
		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/configs", engine.DefaultPuzzleConfig())

		server.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d", w.Code)
		}
		if !saved {
			t.Error("Expected config to be saved")
		}
	})

	t.Run("Missing name", func(t *testing.T) {
		server := setupTestServer(&MockGameService{})
		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/configs", map[string]interface{}{"board_size": 5})

		server.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	server := setupTestServer(&MockGameService{})
	w := httptest.NewRecorder()
	req := makeRequest("GET", "/api/health", nil)

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	parseResponse(t, w, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %s", resp["status"])
	}
}

func TestWebSocketRequiresSession(t *testing.T) {
	server := setupTestServer(&MockGameService{})

	t.Run("Missing session parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ws", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("Unknown session", func(t *testing.T) {
		mockService := &MockGameService{
			GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
				return nil, fmt.Errorf("session not found")
			},
		}
		server := setupTestServer(mockService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ws?session=zzzz", nil)
		server.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

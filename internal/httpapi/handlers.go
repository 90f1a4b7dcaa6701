package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pdrpinto/npuzzle/internal/driver"
	"github.com/pdrpinto/npuzzle/internal/generator"
	"github.com/pdrpinto/npuzzle/internal/sharedstate"
)

// defaultSession is the single board key used when a client doesn't send
// one; the original app.py served exactly one global puzzle_state per
// process, so a missing session key falls back to the same behaviour.
const defaultSession = "default"

func sessionKey(r *http.Request) string {
	if k := r.URL.Query().Get("session"); k != "" {
		return k
	}
	return defaultSession
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type puzzleView struct {
	Size   int   `json:"size"`
	Puzzle []int `json:"puzzle"`
}

// handleGetPuzzle serves original_source/app.py:get_puzzle.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Get(r.Context(), sessionKey(r))
	if err != nil {
		if err == sharedstate.ErrNotFound {
			writeError(w, http.StatusNotFound, "no puzzle yet; POST /api/new first")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, puzzleView{Size: session.Size, Puzzle: session.Puzzle})
}

type moveRequest struct {
	Tile int `json:"tile"`
}

type moveResponse struct {
	Size     int   `json:"size"`
	Puzzle   []int `json:"puzzle"`
	NumMoves int   `json:"num_moves"`
}

// handleMove serves original_source/app.py:move_tile. A move is only
// applied when the requested tile is Manhattan-adjacent to the blank; an
// invalid tile still counts toward num_moves, matching the original.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := s.store.Swap(r.Context(), sessionKey(r), func(sess sharedstate.Session) sharedstate.Session {
		sess.NumMoves++
		idx := indexOf(sess.Puzzle, req.Tile)
		blank := indexOf(sess.Puzzle, 0)
		if idx < 0 || req.Tile == 0 {
			return sess
		}
		if manhattan(idx, blank, sess.Size) == 1 {
			sess.Puzzle[idx], sess.Puzzle[blank] = sess.Puzzle[blank], sess.Puzzle[idx]
		}
		return sess
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, moveResponse{Size: updated.Size, Puzzle: updated.Puzzle, NumMoves: updated.NumMoves})
}

func indexOf(puzzle []int, v int) int {
	for i, x := range puzzle {
		if x == v {
			return i
		}
	}
	return -1
}

func manhattan(a, b, n int) int {
	ar, ac := a/n, a%n
	br, bc := b/n, b%n
	dr, dc := ar-br, ac-bc
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

type newPuzzleRequest struct {
	Size int `json:"size"`
}

// handleNew serves original_source/app.py:new_puzzle.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newPuzzleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Size == 0 {
		req.Size = 4
	}
	if req.Size < 2 || req.Size > 50 {
		writeError(w, http.StatusBadRequest, "size must be between 2 and 50")
		return
	}

	puzzle := generator.GenerateSolvable(req.Size, rngFor(r))
	session := sharedstate.Session{Size: req.Size, Puzzle: puzzle}
	if err := s.store.Set(r.Context(), sessionKey(r), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, puzzleView{Size: session.Size, Puzzle: session.Puzzle})
}

type setStateRequest struct {
	Puzzle []int `json:"puzzle"`
}

// handleSetState serves original_source/app.py:set_state, with the same
// three validations: list length, and that it contains exactly 0..size²-1.
func (s *Server) handleSetState(w http.ResponseWriter, r *http.Request) {
	var req setStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "puzzle must be a list of integers")
		return
	}

	key := sessionKey(r)
	current, err := s.store.Get(r.Context(), key)
	if err != nil && err != sharedstate.ErrNotFound {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	size := current.Size
	if size == 0 {
		size = 4
	}

	if len(req.Puzzle) != size*size {
		writeError(w, http.StatusBadRequest, "puzzle length must match size*size")
		return
	}
	seen := make(map[int]bool, len(req.Puzzle))
	for _, v := range req.Puzzle {
		if v < 0 || v >= size*size {
			writeError(w, http.StatusBadRequest, "puzzle must contain exactly 0..size*size-1")
			return
		}
		seen[v] = true
	}
	if len(seen) != size*size {
		writeError(w, http.StatusBadRequest, "puzzle must contain exactly 0..size*size-1")
		return
	}

	updated := sharedstate.Session{Size: size, Puzzle: req.Puzzle}
	if err := s.store.Set(r.Context(), key, updated); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, puzzleView{Size: updated.Size, Puzzle: updated.Puzzle})
}

type autoSolveRequest struct {
	MaxExpansions      int  `json:"max_expansions"`
	UseHeuristicAdjust bool `json:"use_heuristic_adjustment"`
	BatchSize          int  `json:"batch_size"`
}

// handleAutoSolve serves original_source/app.py:auto_solve: it starts the
// driver in the background and streams its steps to the WebSocket hub
// instead of returning them in the response, matching the original's
// fire-and-forget thread + Socket.IO emit pattern.
func (s *Server) handleAutoSolve(w http.ResponseWriter, r *http.Request) {
	var req autoSolveRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.MaxExpansions == 0 {
		req.MaxExpansions = s.cfg.DefaultMaxExpansions
	}
	if req.BatchSize == 0 {
		req.BatchSize = s.cfg.DefaultBatchSize
	}

	key := sessionKey(r)
	var alreadyRunning bool
	_, err := s.store.Swap(r.Context(), key, func(sess sharedstate.Session) sharedstate.Session {
		if sess.Solving {
			alreadyRunning = true
			return sess
		}
		sess.Solving = true
		return sess
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if alreadyRunning {
		writeJSON(w, http.StatusOK, map[string]string{"status": "solver_already_running"})
		return
	}

	events := make(chan driver.Event, 8)
	go s.driver.Run(context.Background(), key, driver.Options{
		MaxExpansions: req.MaxExpansions,
		BatchSize:     req.BatchSize,
		EnableUpdate:  req.UseHeuristicAdjust,
		StepDelay:     s.cfg.StepDelay(),
	}, events)
	go s.hub.broadcastEvents(events)

	writeJSON(w, http.StatusOK, map[string]string{"status": "solver_started"})
}

// handleStopAutoSolve serves original_source/app.py:stop_auto_solve.
func (s *Server) handleStopAutoSolve(w http.ResponseWriter, r *http.Request) {
	_, err := s.store.Swap(r.Context(), sessionKey(r), func(sess sharedstate.Session) sharedstate.Session {
		sess.Solving = false
		return sess
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "solver_stopped"})
}

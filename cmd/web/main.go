package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/sudokusat/internal/model"
	"github.com/limaJavier/sudokusat/internal/sat"
	"github.com/limaJavier/sudokusat/web"
	"github.com/sirupsen/logrus"
)

var (
	validSolvers = []string{"dpll", "gini", "kissat"}
	solvers      = map[string]func() sat.SATSolver{
		"dpll":   sat.NewDPLLSolver,
		"gini":   sat.NewGiniSolver,
		"kissat": sat.NewKissatSolver,
	}
)

type server struct {
	checker model.Checker
	logger  *logrus.Logger
}

type solveRequest struct {
	Puzzle  [][]int `json:"puzzle"`
	Attempt [][]int `json:"attempt"`
}

type solveResponse struct {
	Solution model.Grid `json:"solution"`
}

type compareResponse struct {
	Verdicts []model.CellVerdict `json:"verdicts"`
	Correct  bool                `json:"correct"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	addrPtr := flag.String("addr", ":8080", "Address to listen on")
	solverPtr := flag.String("solver", "dpll", "SAT-Solver to use. Allowed values are: \"dpll\", \"gini\" and \"kissat\", where \"dpll\" is the default")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)

	logger := logrus.New()

	if !slices.Contains(validSolvers, solverStr) {
		logger.Fatalf("%v is not a valid solver", solverStr)
	}

	srv := &server{
		checker: model.NewChecker(solvers[solverStr]()),
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleIndex)
	mux.HandleFunc("/api/solve", srv.handleSolve)
	mux.HandleFunc("/api/compare", srv.handleCompare)

	logger.WithFields(logrus.Fields{
		"addr":   *addrPtr,
		"solver": solverStr,
	}).Info("listening")
	if err := http.ListenAndServe(*addrPtr, srv.logged(mux)); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

func (srv *server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		srv.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).Round(time.Millisecond),
		}).Info("request served")
	})
}

func (srv *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(web.Index)
}

func (srv *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	puzzle, _, ok := srv.decodeGrids(w, r, false)
	if !ok {
		return
	}

	solved, err := srv.checker.Solve(puzzle)
	if err != nil {
		srv.writeError(w, err)
		return
	}

	writeJson(w, http.StatusOK, solveResponse{Solution: solved})
}

func (srv *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	puzzle, attempt, ok := srv.decodeGrids(w, r, true)
	if !ok {
		return
	}

	verdicts, err := srv.checker.Compare(puzzle, attempt)
	if err != nil {
		srv.writeError(w, err)
		return
	}

	correct := true
	for _, verdict := range verdicts {
		correct = correct && verdict.Correct
	}
	writeJson(w, http.StatusOK, compareResponse{Verdicts: verdicts, Correct: correct})
}

// decodeGrids parses the request body and materializes the grids, answering
// the request itself when anything is off.
func (srv *server) decodeGrids(w http.ResponseWriter, r *http.Request, wantAttempt bool) (puzzle, attempt model.Grid, ok bool) {
	if r.Method != http.MethodPost {
		writeJson(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return puzzle, attempt, false
	}

	var request solveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return puzzle, attempt, false
	}

	puzzle, err := model.GridFromRows(request.Puzzle)
	if err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "invalid puzzle: " + err.Error()})
		return puzzle, attempt, false
	}

	if wantAttempt {
		attempt, err = model.GridFromRows(request.Attempt)
		if err != nil {
			writeJson(w, http.StatusBadRequest, errorResponse{Error: "invalid attempt: " + err.Error()})
			return puzzle, attempt, false
		}
	}
	return puzzle, attempt, true
}

func (srv *server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrUnsolvable) || errors.Is(err, model.ErrNotUnique) {
		writeJson(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	srv.logger.Errorf("solver failure: %v", err)
	writeJson(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJson(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/facts"
	"github.com/wonny/finstitch/internal/render"
	"github.com/wonny/finstitch/internal/stitch"
	"github.com/wonny/finstitch/internal/store"
	"github.com/wonny/finstitch/pkg/logger"
)

// StitchRequest is the request body shared by the statement endpoints
type StitchRequest struct {
	Sources       []contracts.SourceStatement `json:"sources"`
	StatementType contracts.StatementType     `json:"statement_type"`
	MaxPeriods    int                         `json:"max_periods"`
	Standardize   bool                        `json:"standardize"`
}

// FactsRequest adds the fact filter configuration to a stitch request
type FactsRequest struct {
	StitchRequest

	Concept       string `json:"concept,omitempty"`
	ConceptExact  bool   `json:"concept_exact,omitempty"`
	OriginalLabel string `json:"original_label,omitempty"`
	LabelPattern  string `json:"label_pattern,omitempty"`
	MinPeriods    int    `json:"min_periods,omitempty"`
	CompleteOnly  bool   `json:"complete_only,omitempty"`
	Trend         bool   `json:"trend,omitempty"`
}

// StatementHandler serves the statement stitching endpoints.
// The repository is optional; without it results are not persisted.
type StatementHandler struct {
	stitcher *stitch.Stitcher
	repo     contracts.StitchedRepository
	logger   *logger.Logger
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(stitcher *stitch.Stitcher, repo contracts.StitchedRepository, log *logger.Logger) *StatementHandler {
	return &StatementHandler{stitcher: stitcher, repo: repo, logger: log}
}

// Stitch runs the pipeline and returns the stitched statement
// POST /api/statements/stitch
func (h *StatementHandler) Stitch(w http.ResponseWriter, r *http.Request) {
	stitched, ok := h.runStitch(w, r, nil)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stitched)
}

// Table runs the pipeline and returns the ordered rows/columns projection
// POST /api/statements/table
func (h *StatementHandler) Table(w http.ResponseWriter, r *http.Request) {
	stitched, ok := h.runStitch(w, r, nil)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, render.ToTable(stitched))
}

// Facts runs the pipeline and the configured fact query
// POST /api/statements/facts
func (h *StatementHandler) Facts(w http.ResponseWriter, r *http.Request) {
	var req FactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stitched, ok := h.runStitch(w, r, &req.StitchRequest)
	if !ok {
		return
	}

	query := facts.NewView(stitched).Query()
	if req.Concept != "" {
		if req.ConceptExact {
			query = query.ByConceptExact(req.Concept)
		} else {
			query = query.ByConcept(req.Concept)
		}
	}
	if req.OriginalLabel != "" {
		query = query.ByOriginalLabel(req.OriginalLabel)
	}
	if req.LabelPattern != "" {
		query = query.ByOriginalLabelPattern(req.LabelPattern)
	}
	if req.MinPeriods > 0 {
		query = query.AcrossPeriods(req.MinPeriods)
	}
	if req.CompleteOnly {
		query = query.CompletePeriodsOnly()
	}

	if req.Trend {
		series, err := query.Trend()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, series)
		return
	}

	matched, err := query.Execute()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, matched)
}

// GetResult loads a persisted stitched statement by fingerprint
// GET /api/results/{fingerprint}
func (h *StatementHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeError(w, http.StatusNotImplemented, "result store not configured")
		return
	}

	fingerprint := mux.Vars(r)["fingerprint"]
	stitched, err := h.repo.GetByFingerprint(r.Context(), fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no result for fingerprint")
			return
		}
		h.logger.WithError(err).Error("Failed to load stitched result")
		writeError(w, http.StatusInternalServerError, "failed to load result")
		return
	}
	writeJSON(w, http.StatusOK, stitched)
}

// runStitch decodes the request (unless pre-decoded), runs the pipeline
// and persists the result when a repository is wired
func (h *StatementHandler) runStitch(w http.ResponseWriter, r *http.Request, pre *StitchRequest) (*contracts.StitchedStatement, bool) {
	var req StitchRequest
	if pre != nil {
		req = *pre
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if req.StatementType == "" {
		writeError(w, http.StatusBadRequest, "statement_type is required")
		return nil, false
	}

	policy := contracts.PolicyRawConcepts
	if req.Standardize {
		policy = contracts.PolicyStandardize
	}

	stitched, err := h.stitcher.Stitch(req.Sources, req.StatementType, req.MaxPeriods, policy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	if h.repo != nil && !stitched.IsEmpty() {
		if err := h.repo.Save(r.Context(), stitched); err != nil {
			// Persistence is best-effort; the response still carries the result
			h.logger.WithError(err).Warn("Failed to persist stitched result")
		}
	}

	return stitched, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

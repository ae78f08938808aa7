package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/calebmor/sqlfront/internal/config"
	"github.com/calebmor/sqlfront/internal/sqlang"
	"github.com/calebmor/sqlfront/pkg/apierr"
)

type CompileHandler struct {
	logger *slog.Logger
	cfg    config.CompileConfig
}

func NewCompileHandler(logger *slog.Logger, cfg config.CompileConfig) *CompileHandler {
	return &CompileHandler{logger: logger, cfg: cfg}
}

type compileRequest struct {
	Source string `json:"source"`
}

type compileResponse struct {
	ID                  string          `json:"id"`
	Valid               bool            `json:"valid"`
	Tokens              []tokenDTO      `json:"tokens"`
	Tree                *nodeDTO        `json:"tree"`
	SyntaxDiagnostics   []diagnosticDTO `json:"syntax_diagnostics"`
	SemanticDiagnostics []diagnosticDTO `json:"semantic_diagnostics"`
	SymbolTable         []tableDTO      `json:"symbol_table"`
}

// Compile runs the full pipeline over the submitted source and returns every
// artifact it produces. Malformed SQL is a successful compile with
// diagnostics, not an HTTP error; only a bad envelope or an oversized body
// fails the request.
func (h *CompileHandler) Compile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxSourceBytes)

	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeAPIError(w, h.logger, apierr.SourceTooLarge(h.cfg.MaxSourceBytes))
			return
		}
		writeAPIError(w, h.logger, apierr.InvalidRequestBody())
		return
	}

	res := sqlang.CompileWithDepth(req.Source, h.cfg.MaxConditionDepth)

	writeJSON(w, http.StatusOK, compileResponse{
		ID:                  uuid.New().String(),
		Valid:               res.Valid(),
		Tokens:              renderTokens(res.Tokens),
		Tree:                renderNode(res.Tree),
		SyntaxDiagnostics:   renderDiagnostics(res.SyntaxDiagnostics),
		SemanticDiagnostics: renderDiagnostics(res.SemanticDiagnostics),
		SymbolTable:         renderSymbols(res.Symbols),
	})
}

// Package api exposes the import organizer over HTTP.
//
// The server-side config provides defaults (registry overrides, local
// package name, formatting profile); each request may override them.
// Requests are independent: every call builds its own helper, so the
// server shares no mutable organizer state between requests.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pyimports/pkg/config"
	"github.com/matzehuels/pyimports/pkg/errors"
	"github.com/matzehuels/pyimports/pkg/imports"
)

// New builds the API handler with request ID and logging middleware.
func New(logger *log.Logger, cfg *config.Config) http.Handler {
	s := &server{logger: logger, cfg: cfg}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Post("/v1/organize", s.handleOrganize)
	r.Get("/v1/registry", s.handleRegistry)
	return r
}

type server struct {
	logger *log.Logger
	cfg    *config.Config
}

// organizeRequest is the POST /v1/organize payload. Statements are raw
// import lines; specs are structured imports. Options override the
// server-side formatting defaults for this request only.
type organizeRequest struct {
	PackageName   string           `json:"package_name,omitempty"`
	LocalPrefixes []string         `json:"local_prefixes,omitempty"`
	Statements    []string         `json:"statements,omitempty"`
	Specs         []imports.Spec   `json:"specs,omitempty"`
	Options       *organizeOptions `json:"options,omitempty"`
}

type organizeOptions struct {
	Profile            string `json:"profile,omitempty"`
	LineLength         *int   `json:"line_length,omitempty"`
	IndentSize         *int   `json:"indent_size,omitempty"`
	TrailingComma      *bool  `json:"trailing_comma,omitempty"`
	ForceSingleLine    *bool  `json:"force_single_line,omitempty"`
	ForceMultiline     *bool  `json:"force_multiline,omitempty"`
	MultilineThreshold *int   `json:"multiline_threshold,omitempty"`
}

type organizeResponse struct {
	Lines             []string `json:"lines"`
	TypeChecking      []string `json:"type_checking"`
	Count             int      `json:"count"`
	TypeCheckingCount int      `json:"type_checking_count"`
}

type registryResponse struct {
	StdlibCount     int `json:"stdlib_count"`
	ThirdPartyCount int `json:"third_party_count"`
}

func (s *server) handleOrganize(w http.ResponseWriter, r *http.Request) {
	var req organizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON body"))
		return
	}

	h, err := s.requestHelper(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	for _, stmt := range req.Statements {
		h.AddString(stmt)
	}
	for _, spec := range req.Specs {
		h.Add(spec)
	}

	resp := organizeResponse{
		Lines:             h.Formatted(),
		TypeChecking:      h.TypeCheckingFormatted(),
		Count:             h.Count(),
		TypeCheckingCount: h.TypeCheckingCount(),
	}
	if resp.Lines == nil {
		resp.Lines = []string{}
	}
	if resp.TypeChecking == nil {
		resp.TypeChecking = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleRegistry(w http.ResponseWriter, r *http.Request) {
	reg := s.cfg.NewHelper().Registry()
	writeJSON(w, http.StatusOK, registryResponse{
		StdlibCount:     reg.CountStdlib(),
		ThirdPartyCount: reg.CountThirdParty(),
	})
}

// requestHelper merges request overrides into a copy of the server
// config and builds a fresh helper from it.
func (s *server) requestHelper(req *organizeRequest) (*imports.Helper, error) {
	cfg := *s.cfg
	if req.PackageName != "" {
		cfg.Local.PackageName = req.PackageName
	}
	if len(req.LocalPrefixes) > 0 {
		prefixes := make([]string, 0, len(cfg.Local.Prefixes)+len(req.LocalPrefixes))
		prefixes = append(prefixes, cfg.Local.Prefixes...)
		prefixes = append(prefixes, req.LocalPrefixes...)
		cfg.Local.Prefixes = prefixes
	}
	if req.Options != nil {
		o := req.Options
		if o.Profile != "" {
			cfg.Format.Profile = o.Profile
		}
		if o.LineLength != nil {
			cfg.Format.LineLength = o.LineLength
		}
		if o.IndentSize != nil {
			cfg.Format.IndentSize = o.IndentSize
		}
		if o.TrailingComma != nil {
			cfg.Format.TrailingComma = o.TrailingComma
		}
		if o.ForceSingleLine != nil {
			cfg.Format.ForceSingleLine = o.ForceSingleLine
		}
		if o.ForceMultiline != nil {
			cfg.Format.ForceMultiline = o.ForceMultiline
		}
		if o.MultilineThreshold != nil {
			cfg.Format.MultilineThreshold = o.MultilineThreshold
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.NewHelper(), nil
}

// errorBody is the JSON shape for error responses.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)

	status := http.StatusBadRequest
	if body.Error.Code == string(errors.ErrCodeInternal) {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

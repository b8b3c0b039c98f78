// Package api exposes the REST surface of the service: accounts, curriculum
// and quizzes, sync codes, the teacher roster and report downloads. Live
// assessment sessions run over the WebSocket endpoint instead.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/curriculum"
	"github.com/skillsynth/skillsynth/internal/profile"
	"github.com/skillsynth/skillsynth/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves the JSON API.
type Handler struct {
	auth      *profile.Auth
	profiles  profile.Store
	catalog   *curriculum.Catalog
	roster    *profile.Roster
	content   *content.Service
	overrides *curriculum.OverrideStore
}

// Option configures a Handler.
type Option func(*Handler)

// WithOverrideStore persists evolved modules so they survive restarts.
func WithOverrideStore(s *curriculum.OverrideStore) Option {
	return func(h *Handler) {
		h.overrides = s
	}
}

// NewHandler creates the API handler on top of the shared stores and the
// content service.
func NewHandler(profiles profile.Store, catalog *curriculum.Catalog, svc *content.Service, opts ...Option) *Handler {
	h := &Handler{
		auth:     profile.NewAuth(profiles),
		profiles: profiles,
		catalog:  catalog,
		roster:   profile.NewRoster(),
		content:  svc,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts all API routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", h.handleSignup)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)

	mux.HandleFunc("GET /api/profiles/{id}", h.handleGetProfile)
	mux.HandleFunc("DELETE /api/profiles/{id}", h.handleDeleteProfile)
	mux.HandleFunc("GET /api/profiles/{id}/synccode", h.handleSyncCode)
	mux.HandleFunc("POST /api/profiles/{id}/modules/{moduleID}/complete", h.handleCompleteModule)

	mux.HandleFunc("GET /api/curriculum", h.handleListModules)
	mux.HandleFunc("GET /api/curriculum/daily-task", h.handleDailyTask)
	mux.HandleFunc("GET /api/curriculum/{id}", h.handleGetModule)
	mux.HandleFunc("POST /api/curriculum/{id}/adapt", h.handleAdaptModule)
	mux.HandleFunc("POST /api/curriculum/{id}/quiz", h.handleGradeQuiz)

	mux.HandleFunc("POST /api/roster/import", h.handleRosterImport)
	mux.HandleFunc("GET /api/roster", h.handleRoster)
	mux.HandleFunc("GET /api/roster/export", h.handleRosterExport)
	mux.HandleFunc("DELETE /api/roster/{name}", h.handleRosterRemove)

	mux.HandleFunc("POST /api/reports/session", h.handleSessionReport)
}

type signupRequest struct {
	Name         string       `json:"name"`
	ClassSection string       `json:"classSection"`
	Password     string       `json:"password"`
	Role         profile.Role `json:"role"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !readJSON(w, r, &req) {
		return
	}
	p, err := h.auth.Signup(r.Context(), req.Name, req.ClassSection, req.Password, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !readJSON(w, r, &req) {
		return
	}
	p, err := h.auth.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, profile.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		slog.Error("loading profile failed", "error", err)
		writeError(w, http.StatusInternalServerError, "loading profile failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleDeleteProfile clears an account from persistence, the logout path.
func (h *Handler) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		slog.Error("deleting profile failed", "error", err)
		writeError(w, http.StatusInternalServerError, "deleting profile failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSyncCode(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		slog.Error("loading profile failed", "error", err)
		writeError(w, http.StatusInternalServerError, "loading profile failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": profile.EncodeSyncCode(p)})
}

func (h *Handler) handleCompleteModule(w http.ResponseWriter, r *http.Request) {
	moduleID := r.PathValue("moduleID")
	if _, ok := h.catalog.Get(moduleID); !ok {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	p, err := h.profiles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		slog.Error("loading profile failed", "error", err)
		writeError(w, http.StatusInternalServerError, "loading profile failed")
		return
	}

	completed := append(append([]string(nil), p.CompletedModules...), moduleID)
	p.CompleteModule(moduleID, h.catalog.ProgressPercent(completed))
	if err := h.profiles.Save(r.Context(), p); err != nil {
		slog.Error("saving profile failed", "error", err)
		writeError(w, http.StatusInternalServerError, "saving profile failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleListModules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"modules": h.catalog.All()})
}

func (h *Handler) handleDailyTask(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.DailyTaskFor(time.Now()))
}

func (h *Handler) handleGetModule(w http.ResponseWriter, r *http.Request) {
	m, ok := h.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type adaptRequest struct {
	Grade     string `json:"grade"`
	StudentID string `json:"studentId"`
}

func (h *Handler) handleAdaptModule(w http.ResponseWriter, r *http.Request) {
	m, ok := h.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	var req adaptRequest
	if !readJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.content.AdaptModule(r.Context(), m, req.Grade, req.StudentID))
}

type quizRequest struct {
	StudentID string         `json:"studentId"`
	Grade     string         `json:"grade"`
	Answers   map[string]int `json:"answers"`
}

type quizResponse struct {
	Correct  int                `json:"correct"`
	Total    int                `json:"total"`
	Mastered bool               `json:"mastered"`
	Evolved  *curriculum.Module `json:"evolved,omitempty"`
}

// handleGradeQuiz scores a quiz submission. Mastering a base module triggers
// an evolved variant; if the backend cannot produce one, the result is still
// returned and the catalog keeps the original.
func (h *Handler) handleGradeQuiz(w http.ResponseWriter, r *http.Request) {
	m, ok := h.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	var req quizRequest
	if !readJSON(w, r, &req) {
		return
	}

	correct, mastered := curriculum.GradeQuiz(m, req.Answers)
	resp := quizResponse{Correct: correct, Total: len(m.Quizzes), Mastered: mastered}

	if mastered && !strings.HasSuffix(m.ID, curriculum.EvolvedSuffix) {
		evolved, err := h.content.EvolveModule(r.Context(), m, req.Grade, req.StudentID)
		if err != nil {
			slog.Warn("module evolution failed", "module_id", m.ID, "error", err)
		} else {
			installed := h.catalog.ReplaceEvolved(m.ID, evolved)
			resp.Evolved = &installed
			if h.overrides != nil {
				if err := h.overrides.Save(r.Context(), h.catalog.Overrides()); err != nil {
					slog.Warn("persisting curriculum overrides failed", "error", err)
				}
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type rosterImportRequest struct {
	Code string `json:"code"`
}

func (h *Handler) handleRosterImport(w http.ResponseWriter, r *http.Request) {
	var req rosterImportRequest
	if !readJSON(w, r, &req) {
		return
	}
	entry, err := h.roster.ImportSyncCode(req.Code)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleRoster(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"students":        h.roster.Entries(),
		"count":           h.roster.Len(),
		"averageProgress": h.roster.AverageProgress(),
	})
}

func (h *Handler) handleRosterExport(w http.ResponseWriter, _ *http.Request) {
	data, err := report.RosterWorkbook(h.roster.Entries())
	if err != nil {
		slog.Error("rendering roster workbook failed", "error", err)
		writeError(w, http.StatusInternalServerError, "rendering roster failed")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="class-roster.xlsx"`)
	w.Write(data)
}

func (h *Handler) handleRosterRemove(w http.ResponseWriter, r *http.Request) {
	h.roster.Remove(r.PathValue("name"))
	w.WriteHeader(http.StatusNoContent)
}

type sessionReportRequest struct {
	StudentName string           `json:"studentName"`
	Feedback    content.Feedback `json:"feedback"`
	Turns       []content.Turn   `json:"turns"`
}

// handleSessionReport renders a finished session's feedback into a workbook.
// The client holds the report it received over the WebSocket and posts it
// back when the student asks for a download.
func (h *Handler) handleSessionReport(w http.ResponseWriter, r *http.Request) {
	var req sessionReportRequest
	if !readJSON(w, r, &req) {
		return
	}
	data, err := report.SessionWorkbook(req.StudentName, req.Feedback, req.Turns)
	if err != nil {
		slog.Error("rendering session workbook failed", "error", err)
		writeError(w, http.StatusInternalServerError, "rendering report failed")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="assessment-report.xlsx"`)
	w.Write(data)
}

func readJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

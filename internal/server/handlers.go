package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TokenRequest exchanges the shared API key for a bearer token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ParseRequest carries raw resume text to parse.
type ParseRequest struct {
	RawText string `json:"raw_text" validate:"required"`
}

// TailorRequest carries a parsed document and a target job posting.
type TailorRequest struct {
	Resume types.ResumeDocument `json:"resume"`
	Job    types.JobPosting     `json:"job" validate:"required"`
}

// TailorResponse carries the tailored document and its rendered text.
type TailorResponse struct {
	Document     types.ResumeDocument `json:"document"`
	RenderedText string               `json:"rendered_text"`
	Fallback     bool                 `json:"fallback"`
	Reason       string               `json:"reason,omitempty"`
}

// RenderRequest carries a document to render as plain text.
type RenderRequest struct {
	Document types.ResumeDocument `json:"document"`
}

// CreateResumeResponse carries the stored resume ID and parse status.
type CreateResumeResponse struct {
	ID     uuid.UUID         `json:"id"`
	Status types.ParseStatus `json:"status"`
	Reason string            `json:"reason,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}
	if !s.apiKeys.Verify(req.APIKey) {
		err := &ErrInvalidAPIKey{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	token, err := s.jwtService.IssueToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	s.jsonResponse(w, http.StatusOK, TokenResponse{Token: token})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}
	result := s.parser.Parse(req.RawText)
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}
	tailored, report := s.engine.Tailor(req.Resume, req.Job)
	s.jsonResponse(w, http.StatusOK, TailorResponse{
		Document:     tailored,
		RenderedText: rendering.RenderText(tailored),
		Fallback:     report.Fallback,
		Reason:       report.Reason,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rendering.RenderText(req.Document)))
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	var req ParseRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		return
	}
	result := s.parser.Parse(req.RawText)
	id, err := s.db.SaveResume(r.Context(), req.RawText, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save resume: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, CreateResumeResponse{
		ID:     id,
		Status: result.Status,
		Reason: result.Reason,
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrResumeNotFound{ResumeID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	body, err := readBody(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	// Job postings arrive from external collaborators; gate them on the
	// published schema before trusting the shape.
	if schemaPath := schemas.ResolveSchemaPath("schemas/job_posting.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, body); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	var job types.JobPosting
	if err := json.Unmarshal(body, &job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job posting JSON: "+err.Error())
		return
	}
	id, err := s.db.SaveJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save job posting: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	jobs, err := s.db.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleTailorStored(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	resumeID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	jobID, ok := s.pathUUID(w, r, "job_id")
	if !ok {
		return
	}

	rec, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrResumeNotFound{ResumeID: resumeID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	tailored, report := s.engine.Tailor(rec.Document, *job)
	text := rendering.RenderText(tailored)
	if _, err := s.db.SaveTailored(r.Context(), resumeID, jobID, tailored, text); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save tailored resume: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, TailorResponse{
		Document:     tailored,
		RenderedText: text,
		Fallback:     report.Fallback,
		Reason:       report.Reason,
	})
}

func (s *Server) handleGetTailored(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	resumeID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	jobID, ok := s.pathUUID(w, r, "job_id")
	if !ok {
		return
	}
	text, err := s.db.GetTailoredText(r.Context(), resumeID, jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "database error: "+err.Error())
		return
	}
	if text == "" {
		s.errorResponse(w, http.StatusNotFound, "no tailored resume stored for this resume and job")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

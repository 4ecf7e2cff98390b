package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxRequestBytes bounds request bodies; resumes are text, not archives.
const maxRequestBytes = 1 << 20

// readBody reads a size-limited request body.
func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
}

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation. On failure it writes the error response and returns the
// error so the handler can bail.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := readBody(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return err
	}
	if err := s.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			ve := &ErrValidation{Field: fe.Field(), Message: "failed on '" + fe.Tag() + "' constraint"}
			s.errorResponse(w, HTTPStatus(ve), ve.Error())
			return ve
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// pathUUID extracts and parses a UUID path parameter. On failure it writes
// the error response and returns ok=false.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

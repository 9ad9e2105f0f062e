package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/identity"
	cmsvalidation "github.com/amalfoundation/foundation-cms/internal/validation"
)

// Response envelopes shared by every endpoint. Lists report the full
// filtered total; single records ride under "data"; deletions acknowledge
// with "success".
type listResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

type dataResponse struct {
	Data any `json:"data"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error   string                          `json:"error"`
	Message string                          `json:"message,omitempty"`
	Issues  []cmsvalidation.ValidationIssue `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}

func readBody(r *http.Request) (json.RawMessage, error) {
	if r == nil || r.Body == nil {
		return nil, io.EOF
	}
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var contentNotFound *content.NotFoundError
	if errors.As(err, &contentNotFound) {
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: contentNotFound.Error()}
	}

	var hrNotFound *hr.NotFoundError
	if errors.As(err, &hrNotFound) {
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: hrNotFound.Error()}
	}

	if errors.Is(err, identity.ErrUserNotFound) {
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()}
	}

	if errors.Is(err, identity.ErrUnauthorized) || errors.Is(err, identity.ErrSessionExpired) {
		return http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: err.Error()}
	}

	if errors.Is(err, identity.ErrInvalidCredentials) {
		return http.StatusUnauthorized, errorResponse{Error: "invalid_credentials", Message: err.Error()}
	}

	if errors.Is(err, identity.ErrAccountInactive) {
		return http.StatusForbidden, errorResponse{Error: "forbidden", Message: err.Error()}
	}

	if errors.Is(err, identity.ErrNotImplemented) {
		return http.StatusNotImplemented, errorResponse{Error: "not_implemented", Message: err.Error()}
	}

	var payloadErr *cmsvalidation.PayloadValidationError
	if errors.As(err, &payloadErr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
			Issues:  cmsvalidation.Issues(err),
		}
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: fieldErrs.Error(),
		}
	}

	if errors.Is(err, content.ErrInvalidPatch) ||
		errors.Is(err, content.ErrRecordIDRequired) ||
		errors.Is(err, content.ErrTitleRequired) ||
		errors.Is(err, hr.ErrNameRequired) ||
		errors.Is(err, hr.ErrEmailRequired) ||
		errors.Is(err, hr.ErrEmailInvalid) ||
		errors.Is(err, hr.ErrStatusInvalid) ||
		errors.Is(err, hr.ErrIDRequired) {
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
}

func parseID(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errors.New("id required")
	}
	return strconv.ParseInt(trimmed, 10, 64)
}

func parseIntQuery(value string, defaultValue int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseBoolQuery(value string) *bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseListOptions reads the shared listing query parameters. The locale
// filter is applied only when the request names one.
func parseListOptions(r *http.Request) content.ListOptions {
	query := r.URL.Query()
	opts := content.ListOptions{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		OrderBy:  query.Get("orderBy"),
		Order:    query.Get("order"),
		Limit:    parseIntQuery(query.Get("limit"), 0),
		Offset:   parseIntQuery(query.Get("offset"), 0),
	}
	if raw := strings.TrimSpace(query.Get("locale")); raw != "" {
		opts.Locale = domain.ParseLocale(raw)
	}
	opts.Published = parseBoolQuery(query.Get("published"))
	return opts
}

package webapp

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const (
	codeValidation       = "VALIDATION_ERROR"
	codeNotFound         = "NOT_FOUND"
	codeInternal         = "INTERNAL_ERROR"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeRateLimited      = "RATE_LIMITED"
)

type apiMeta map[string]any

type apiError struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
	Details   any    `json:"details,omitempty"`
}

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Meta    apiMeta   `json:"meta,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func (webapp *WebApp) timestamp() string {
	return time.Now().In(webapp.loc).Format(time.RFC3339)
}

// respondSuccess wraps data in the success envelope. Extra meta entries
// merge into the standard timestamp/api_version/timezone block.
func (webapp *WebApp) respondSuccess(w http.ResponseWriter, r *http.Request, status int, data any, extra apiMeta) {
	meta := apiMeta{
		"timestamp":   webapp.timestamp(),
		"api_version": webapp.Config.API.Version,
		"timezone":    webapp.Config.API.Timezone,
	}
	if id := requestID(r); id != "" {
		meta["request_id"] = id
	}
	for k, v := range extra {
		meta[k] = v
	}

	webapp.writeJSON(w, status, envelope{Success: true, Data: data, Meta: meta})
}

// respondError wraps a failure in the error envelope. Internal detail is
// suppressed outside debug mode.
func (webapp *WebApp) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	if status >= 500 {
		webapp.Log.Error().Str("code", code).Str("path", r.URL.Path).Msg(message)
		if !webapp.Config.Server.Debug {
			details = nil
		}
	}

	webapp.writeJSON(w, status, envelope{
		Success: false,
		Error: &apiError{
			Message:   message,
			Code:      code,
			Status:    status,
			Timestamp: webapp.timestamp(),
			Details:   details,
		},
	})
}

// writeJSON marshals any payload straight onto the wire. Used both for
// enveloped responses and the couple of historic bare-shape endpoints.
func (webapp *WebApp) writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		webapp.Log.Error().Err(err).Msg("response marshal failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		webapp.Log.Warn().Err(err).Msg("response write failed")
	}
}

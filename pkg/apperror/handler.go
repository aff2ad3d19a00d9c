package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// WriteJSON writes err as {"error":{"code","message"}}. Server errors are
// logged; client errors are not.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal.WithInternal(err)
	}

	code, body := ToHTTPError(appErr)
	if code >= http.StatusInternalServerError {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

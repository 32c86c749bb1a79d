package response

import (
	"encoding/json"
	"net/http"
)

// StatusRequestFailed is the non-standard code the API contract uses for
// validation failures and domain-level lookup/uniqueness errors.
const StatusRequestFailed = 419

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// OK writes a 200 response with the given payload.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// ValidationFailed reports field-level constraint violations as
// {"errors": {field: [message, ...]}}.
func ValidationFailed(w http.ResponseWriter, errors interface{}) {
	JSON(w, StatusRequestFailed, map[string]interface{}{
		"errors": errors,
	})
}

// BusinessError reports a domain-level failure (not found, conflict) as a
// single message under "error".
func BusinessError(w http.ResponseWriter, message string) {
	JSON(w, StatusRequestFailed, map[string]interface{}{
		"error": message,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	JSON(w, http.StatusUnauthorized, map[string]interface{}{
		"message": message,
	})
}

// InternalError writes a 500 with a fixed user-facing message. The raw
// error text is attached under "details" only when expose is set.
func InternalError(w http.ResponseWriter, message string, err error, expose bool) {
	body := map[string]interface{}{
		"error": message,
	}
	if expose && err != nil {
		body["details"] = err.Error()
	}
	JSON(w, http.StatusInternalServerError, body)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps individual handlers and logs start/completion with a
per-request ID via log/slog:

	mux.HandleFunc("GET /stats", middleware.WithLogging(h.GetStats))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Score is out of range")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse wraps the message in the standard models.ErrorResponse
envelope.

# CORS

CORS wraps the whole mux and answers preflight requests. The voting page is
served from a separate origin, so the policy allows any origin for GET and
POST.

# Client IP

GetClientIP resolves the originating address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr. Used for login auditing.
*/
package middleware

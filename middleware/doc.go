// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging logs request start and completion with slog:

	mux.HandleFunc("GET /moods", middleware.WithLogging(handler))

Every request gets an id (taken from X-Request-ID or a fresh UUID) that is
logged with both lines and echoed in the response header.

# Sessions

RequireSession validates the token from X-Session-Token (or an
"Authorization: Bearer" header) and exposes the user id:

	mux.HandleFunc("GET /entries", middleware.RequireSession(secret, h.ListEntries))

	userID, ok := middleware.UserID(r.Context())

Missing or invalid tokens get 401.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.TextResponse(w, http.StatusOK, text)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Errors are written as {"error": "Bad Request", "message": "..."}.

# CORS

CORS wraps the whole mux and answers preflight OPTIONS requests, so a local
web or desktop front end can call the API.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/habits", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Reflects the request Origin (or "*") and answers OPTIONS preflights
directly. Allowed methods are GET, POST, PATCH and OPTIONS.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, habit)
	middleware.ErrorResponse(w, http.StatusNotFound, "habit not found")

Error bodies have the shape {"error": "habit not found"}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Honors X-Forwarded-For and X-Real-IP before RemoteAddr.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the mood diary API.

# Route Setup

NewRouter builds the handler tree with all routes registered:

	h := router.NewRouter(store, cfg)
	http.ListenAndServe(":3318", h)

Routes use Go 1.22+ method and wildcard patterns. The whole mux is wrapped
in middleware.CORS.

# Routes

Public:

	GET  /health            → "OK"
	GET  /                  → API banner
	POST /users/register    → UserHandler.Register
	POST /users/login       → UserHandler.Login (returns session token)
	GET  /moods             → ListMoods
	GET  /questions/today   → QuestionHandler.Today (?assign=false to only read)

Session required (X-Session-Token):

	POST /entries           → EntryHandler.SaveEntry
	GET  /entries           → EntryHandler.ListEntries
	GET  /entries/history   → EntryHandler.History (text/plain)
	GET  /entries/scores    → EntryHandler.Scores

All routes except /health and / are wrapped with middleware.WithLogging.
*/
package router

// Package handler contains the JSON HTTP handlers for the job board API.
//
// This file defines the middleware stacks route groups are mounted behind.
package handler

import "net/http"

// Guards are the middleware stacks route groups are mounted behind. Each
// stack is composed by the caller, outermost first.
type Guards struct {
	// Public attaches the caller when a token is present but never refuses.
	Public func(http.Handler) http.Handler
	// Identity requires a verified token. The user row may not exist yet.
	Identity func(http.Handler) http.Handler
	// User requires a stored, unbanned account.
	User func(http.Handler) http.Handler
	// Employer requires the employer role.
	Employer func(http.Handler) http.Handler
	// Candidate requires the candidate role.
	Candidate func(http.Handler) http.Handler
	// Admin requires the admin or super admin role.
	Admin func(http.Handler) http.Handler
	// SuperAdmin requires the super admin role.
	SuperAdmin func(http.Handler) http.Handler
	// PushLimit throttles push-to-top requests per caller.
	PushLimit func(http.Handler) http.Handler
}

func passthrough(next http.Handler) http.Handler { return next }

// withDefaults fills unset guards with a pass-through so tests can mount
// routes without wiring every stack.
func (g Guards) withDefaults() Guards {
	for _, mw := range []*func(http.Handler) http.Handler{
		&g.Public, &g.Identity, &g.User, &g.Employer, &g.Candidate, &g.Admin, &g.SuperAdmin, &g.PushLimit,
	} {
		if *mw == nil {
			*mw = passthrough
		}
	}
	return g
}

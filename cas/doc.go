// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cas validates login tickets against the university's CAS v1
single-sign-on endpoint.

# Protocol

CAS v1 answers ticket validation with two plain-text lines:

	yes
	abc123

or, on rejection:

	no

Validate performs the round trip and parses that response:

	caseID, err := client.Validate(ctx, ticket, serviceURL)

Every failure mode - network error, a "no" answer, a missing identity
line - collapses into ErrAuthFailed. No detail is surfaced to the user;
a failed login is simply retried from the start.

# Isolation

The fragile line-oriented parser lives behind this one package boundary so
handlers depend on a narrow Validate call, and tests can stand up a fake
CAS server with net/http/httptest.
*/
package cas

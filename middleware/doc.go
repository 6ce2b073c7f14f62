// Package middleware provides pipeline handlers for cross-cutting concerns:
// authentication and role guards, request IDs, request logging, and
// Accept-Language negotiation.
//
// Every middleware is a chain.Handler, so it composes like any route or
// terminal:
//
//	protected := chain.Pipe(
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.RequiresAuth(verifySession, loginRedirect),
//		accountRoutes,
//	)
//
// Guards consume host-supplied identity checks; the toolkit deliberately
// implements no claims or session machinery of its own.
package middleware

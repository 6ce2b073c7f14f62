// Package response provides terminal handlers for the pipeline: constructors
// that commit a response (status, headers, body) and always report
// participation. They are the innermost links of a Compose chain:
//
//	chain.Compose(route.Exact("/ping"), response.String("pong"))
//
// Besides the basic text/bytes/status terminals, the package covers JSON and
// XML encoding, redirects, templ components, chunked streaming, WebSocket
// upgrades, and Accept-header content negotiation.
//
// The error side lives here too: HTTPError models structured failures with
// a status code, and ErrorHandler/JSONErrorHandler are ready-made error
// boundaries for chain.HTTPHandler. A handler that wants the boundary to
// answer returns an error instead of writing:
//
//	return response.Error(response.ErrForbidden.WithMessage("read-only key"))
package response

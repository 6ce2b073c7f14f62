// Package route decides whether a request participates in a pipeline branch
// by matching its path against compiled templates, extracting strongly-typed
// arguments along the way.
//
// Templates mix literal text with printf-style placeholders:
//
//	%b  bool ("true"/"false", case-insensitive; no 1/0 coercion)
//	%c  a single character, never a slash
//	%s  string within one path segment, percent-decoded
//	%i  signed 32-bit integer
//	%d  signed 64-bit integer
//	%f  IEEE double
//	%O  canonical hyphenated UUID
//	%%  a literal percent sign
//
// Patterns compile once when a route handler is constructed and are
// immutable afterwards, so they are shared safely across concurrent
// requests. A malformed template is a programming error and panics at
// construction time; a placeholder value that fails to parse at match time
// just declines the request, letting chain.Choose fall through to the next
// candidate.
//
//	pipeline := chain.Choose(
//		chain.Compose(route.Exact("/ping"), response.String("pong")),
//		route.Routef("/user/%s/%i", func(args []any) chain.Handler {
//			name, id := args[0].(string), args[1].(int32)
//			return response.JSON(map[string]any{"name": name, "id": id})
//		}),
//		route.SubRoute("/api", apiRoutes),
//	)
//
// Bind matches named captures onto struct fields for handlers that prefer a
// record over positional arguments:
//
//	type UserPath struct {
//		Name string `route:"name"`
//		ID   int64  `route:"id"`
//	}
//
//	route.Bind("/user/{name}/{id}(/?)", func(p UserPath) chain.Handler {
//		return response.JSON(p)
//	})
//
// Ports selects a sub-pipeline by the listener port that accepted the
// connection; pair it with server.ListenGroup, which serves one listener per
// port over a shared pipeline.
package route

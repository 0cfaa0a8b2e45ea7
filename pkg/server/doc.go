// Package server exposes the render pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz       liveness probe
//	POST /render        document in, mermaid text out
//	POST /render/json   document in, {diagram, diagnostics, stats} out
//
// The request body is a declarative document (see package document). Its
// format comes from the format query parameter or, failing that, from the
// Content-Type header; YAML is assumed when neither is set. The output
// query parameter selects "text" (default) or "markdown".
//
// Every response carries an X-Request-ID header. A client supplied ID is
// echoed back; otherwise a fresh UUID is generated.
//
// # Errors
//
// Failures are returned as JSON with the error code:
//
//	{"code": "INVALID_FORMAT", "message": "decode yaml document"}
//
// Undecodable documents and bad parameters answer 400. Documents whose root
// cannot be resolved into a graph answer 422.
package server

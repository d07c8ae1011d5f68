// Package web serves Atom feeds of repository issue activity over HTTP.
//
// Every GET request, whatever its path, is a feed request described by its
// query parameters:
//
//	GET /?repo=octo/hello&host_type=github&since=2024-01-01T00:00:00Z&page=2
//
// Successful responses are application/atom+xml. Failures are JSON
// documents of the form {"code": 400, "message": "..."}.
package web

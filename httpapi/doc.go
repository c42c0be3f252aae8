// Package httpapi exposes the gateway over HTTP: a gin engine with one route,
// GET /testdb, that returns {"success":true,"data":...} or a generic 500.
package httpapi

// Package api wires the HTTP surface: one generic CRUD resource per entity,
// CORS, request logging, and translation of repository and storage errors
// into client-visible responses.
package api

// Package http contains the gin handlers for the REST API.
//
// Endpoints mirror the frontend contract: user profile upsert and lookup,
// professor listing/search with pagination, the recommendation stub that
// returns all professors unranked, a live research-area vocabulary load,
// and database statistics.
//
// Error mapping: malformed input is 400, a missing record is 404, and any
// unexpected internal failure is 500 with the underlying message attached.
package http

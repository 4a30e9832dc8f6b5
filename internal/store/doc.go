// Package store is the SQLite repository for user profiles and scraped
// professor records.
//
// The schema is embedded and applied on Open, so a fresh database file is
// usable immediately. Research interests and skills persist as JSON text
// columns; search filters run as substring LIKE matches combined with
// AND, ordered by name.
//
// Batch professor inserts are best-effort: individual failures are logged
// and skipped, never aborting the rest of the batch.
package store

// Package main is the scrape-and-populate CLI.
//
// It runs a full directory scrape (vocabularies, listing walk, profile
// extraction) and inserts the resulting professor records into the SQLite
// store, printing a summary report.
//
// Usage:
//
//	./populate -pages 56 -clear
//	./populate -base-url https://www.khoury.northeastern.edu/people/ -dev
package main

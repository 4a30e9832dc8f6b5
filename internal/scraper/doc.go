// Package scraper crawls a university faculty directory and extracts
// structured professor records.
//
// Pipeline:
//  1. LoadVocabulary reads the index page's filter widgets to learn the
//     closed sets of research-area and campus-location labels.
//  2. Walk iterates the paginated listing and collects one slug per
//     directory card, stopping early on an empty page past a threshold.
//  3. Extract fetches each profile and classifies its short text
//     fragments into fields via a rule cascade (vocabulary membership,
//     "@" for email, digit+punctuation for phone).
//  4. Run drives the whole pipeline sequentially with politeness pauses
//     and collects a success/failure report.
//
// Everything downstream of a fetch tolerates absence: a missing page is a
// failed slug, a missing DOM region is an unset field. Only a walk that
// discovers nothing at all fails the run.
package scraper

// Package cli provides the interactive tourplanner command-line client.
//
// It wires configuration, the local cache, the API services and the itinerary
// state into a REPL. Typical flow: log in with a refresh token, start a draft
// for a date range, pick a city and bookmarked items for every day, organize
// the draft into per-day timelines, reorder them and save the tour.
//
// Key features:
//   - Login / Logout with token persistence
//   - Day, city and item selection with city change confirmation
//   - Empty day warning before organizing
//   - Drag and move reordering of each day's timeline
//   - Offline reads from the local cache
//   - Catalog browsing and eSIM purchase
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

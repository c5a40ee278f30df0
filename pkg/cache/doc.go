// Package cache persists resolved driver versions keyed by subject, browser
// build, and local build, so a resolution is fetched from the network at
// most once per browser build.
//
// Staleness is structural, not time based: an entry is trusted only while
// the browser build it was resolved for matches the browser currently
// installed. Upgrading the browser invalidates the entry implicitly; no
// expiry bookkeeping is needed and stale entries are never deleted, only
// ignored.
//
// Three Store backends are provided: a YAML file (default, one small file
// per user), LevelDB (many subjects, no whole-file rewrites), and an
// in-memory map (tests, ephemeral runs).
package cache

// Package browser discovers installed browsers and reports their raw
// version strings. Discovery order: explicit path override, PATH lookup,
// then well-known per-OS install locations. A missing browser is a
// representable outcome (empty string), not an error.
package browser

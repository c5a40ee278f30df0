// Package release queries remote driver release indices and applies the
// lookup fallback protocol: a scoped per-build entry first, then the
// unscoped latest release, but only to refine the diagnostic. Once the
// scoped lookup has failed, resolution is over; the chain always terminates
// in a ResolutionError whose FailureStage distinguishes a missing release
// line, a browser ahead of every published driver, and a network outage.
package release

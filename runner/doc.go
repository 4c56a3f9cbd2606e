// Package runner executes a set of shortest-path engines against the same
// network and query, timing each one and collecting compare.Measurement
// values ready for compare.Compare and compare.WriteReport.
//
// Engines run one after another on the calling goroutine so that their
// timings do not interfere. An engine that fails (or panics) is recorded in
// its own measurement with an empty path; the remaining engines still run.
// Unknown start or end stations are rejected before any engine is invoked.
//
// Logging goes through an injected *zap.Logger; the default is a no-op
// logger, so the package stays silent unless a caller opts in.
package runner

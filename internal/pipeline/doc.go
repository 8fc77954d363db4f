// Package pipeline runs one rename operation end to end: pick the selection
// (Discover for directories, the scene selection otherwise), lock the
// namespace, open the host, apply the operation through naming.Renamer, log
// each outcome and report the tally.
//
// Files:
//   - discover.go: directory selection from glob patterns.
//   - namespace.go: OpenHost, CheckPath and the Namespace handle.
//   - ops.go: ReplaceOp and NumberOp.
//   - runner.go: Run and its log lines.
//   - stats.go: RunStats and the exit code.
package pipeline

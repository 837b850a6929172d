// Package glog provides an immutable, chainable log-context builder
// over rs/zerolog with syslog-style severities and a swappable backend.
//
// Key features
//   - Immutable Context values: every Add returns a new Context, so
//     contexts can be shared and extended concurrently without locks
//   - Emission resets: each emission sends exactly one record and hands
//     back a fresh empty Context, while the emitted one stays usable
//   - Syslog severity set (Emergency down to Debug) plus a distinct
//     ConfigLevel threshold type with all/none sentinels
//   - Positional {0}-style templates with strict arity checking
//   - Named output handlers on the zerolog backend: custom writers,
//     lumberjack-rotated files, and single-line console formatting
//   - Error history enrichment: for any error-valued field, the backend
//     includes the full error chain (outermost -> root), the root cause
//     string, and a joined human-readable history.
//
// Typical usage
//
//	ctx := glog.New().Add("user_id", id)
//	ctx = ctx.Add("count", n).Info("processed")
//
//	req := glog.New().AddFields(glog.Str("request_id", rid))
//	req.AddField(glog.Err(err)).Error("failed")
package glog

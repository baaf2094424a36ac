// Package supervisor keeps exactly one media-processing worker running
// against a single long-lived input handle.
//
// The handle is the supervisor's stdin, duplicated once at startup and lent
// to every worker invocation; it is never closed or reopened between
// restarts, so bytes the upstream producer writes while a worker is down sit
// in the pipe's buffer and reach the next worker intact. Worker exits are
// never fatal: every termination, clean or not, is logged and followed by a
// fixed backoff and a relaunch. The loop has no natural end and stops only
// when its context is cancelled.
package supervisor

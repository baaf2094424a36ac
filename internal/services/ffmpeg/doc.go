// Package ffmpeg wraps the external worker command that consumes the live
// PCM stream, ffmpeg by default.
//
// It owns the fixed argument template (diagnostic flags, queue-size hint,
// s16le input framing, stdin binding) and appends the caller's trailing
// arguments verbatim. Exit statuses are returned as plain integers so the
// supervisor can report and retry every termination uniformly; a worker that
// cannot be started at all is reported as status 127. Tests can swap in fakes
// through the Client interface to avoid executing a real encoder.
package ffmpeg

// Package output holds the collaborators that persist a run: per-day PNG
// frames, an optional MJPEG video, an optional daily statistics CSV, and the
// append-only timings log. Every type here is a sird.Sink or is called once
// by the command after the run.
package output

// Package main hosts the livepipe CLI entrypoint and command graph.
//
// The root command is the supervisor itself: it takes the stream framing
// positionally (sample rate, channel count) plus the worker's trailing
// arguments, duplicates stdin into the long-lived input handle, and runs the
// restart loop until a termination signal arrives. Configuration scaffolding
// lives under the config subcommand.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through commands or flags here.
package main

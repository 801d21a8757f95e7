// Package main hosts the glint CLI entrypoint and command graph.
//
// The Cobra-based command tree wires configuration resolution, console
// capability detection, and session log sinks together, then surfaces the
// status reporter through demo, tag reference, and configuration commands.
//
// Keep this package lean: new functionality belongs in the internal packages
// first, surfaced here through dedicated commands or flags.
package main

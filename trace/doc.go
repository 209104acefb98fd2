// Package trace provides sinks for the step by step output of conversions.
//
// Every converter reports its arithmetic to a Sink. A line may be built from
// several Emit calls: only the call with newline set ends the line. Each top
// level operation finishes with a call to Separator.
//
// The package provides three sinks:
//
//   - Nop: discards everything, the default when tracing is off
//   - Writer: writes lines to an io.Writer as they arrive
//   - Recorder: keeps lines in memory for later inspection
//
// Converters check Enabled before formatting a line so that a disabled trace
// costs nothing.
package trace

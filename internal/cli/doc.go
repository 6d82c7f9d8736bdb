// Package cli parses command-line arguments, wires the input source, the
// analyzer and the exporter together, and maps failures to exit codes.
package cli

// Package cli implements the command-line front end of the rle tool: flag
// parsing into a Config and the Run loop that decodes inputs and writes them
// in the requested output format.
package cli

// Package cli parses the mazesearch command line and owns process-level
// concerns such as exit codes. Flags override values from the optional
// configuration file.
package cli

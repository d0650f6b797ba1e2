// Package config loads the optional HCL file that drives the mazesearch
// command: logging, maze generation parameters and which searches to run.
// Every attribute is optional; anything left out keeps its Default value.
package config

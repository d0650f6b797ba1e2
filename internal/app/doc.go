// Package app wires configuration, logging and the search packages into the
// mazesearch demo: build one maze, print it, then for each configured search
// print either the solved maze or a no-solution notice.
package app

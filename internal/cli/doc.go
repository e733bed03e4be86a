// Package cli turns the command line of the singlelink executable into a
// validated Options value and builds its logger. Everything here runs
// before the clustering engine is invoked.
package cli

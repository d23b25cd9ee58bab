// Package metric provides Prometheus counters for the shell.
//
// The counters track controller activity: lines read, commands
// dispatched, dispatch faults, parse errors and completion requests.
// A CLI has no scrape endpoint, so values are read back through the
// registry's Gather and surfaced by the stats command.
package metric

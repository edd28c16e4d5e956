/*
Package observability provides tools for monitoring the analyzer.

It turns the lifecycle hooks of a parse into Prometheus metrics and
structured log records.
*/
package observability

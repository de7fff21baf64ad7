// Package engine contains the core scanning logic for PowerScan. It applies
// a rule catalog to a set of in-memory source files and returns an ordered,
// deterministic ScanResult. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine

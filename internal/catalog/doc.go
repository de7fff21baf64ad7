// Package catalog loads and validates the rule set PowerScan matches against.
// A catalog either loads completely or not at all: any rule with a missing
// field or a non-compiling pattern fails the whole load, so a scan never runs
// with a silently truncated rule set.
package catalog

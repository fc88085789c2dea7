// Package filter is the decision core of the build-observation tool: given
// one observed process invocation, it decides whether the invocation is a
// compiler call, which argument (if any) is the source file being compiled,
// and whether the invocation is voided by a cancel condition (for instance a
// link-only or preprocess-only run).
//
// A Filter is built once from three ordered pattern lists (compilers,
// source_files, cancel_parameters) and is immutable afterwards. Everything
// around it — capturing processes, parsing configuration files, writing
// results — lives elsewhere; this package only classifies.
package filter

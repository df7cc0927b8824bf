// Package match defines the value types produced by a sequence evaluation:
// findings and per-item diagnostic records. The evaluation engine itself
// lives in internal/matching; the fluent construction surface in
// pkg/fluent.
package match

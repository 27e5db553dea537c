// Package constraints implements the constraint checker (component F):
// per-room size rules, adjacency expectation rules, and the privacy/ensuite
// rules from spec §4.F. It reads a level snapshot and emits three disjoint
// string lists — satisfied, violated, warnings — with stable message text,
// the same shape as the teacher's validation package (NewHardConstraintResult
// / NewSoftConstraintResult in pkg/validation/report.go), simplified down to
// plain strings since the Core's constraint checker carries no numeric
// score, only pass/fail/advisory.
package constraints

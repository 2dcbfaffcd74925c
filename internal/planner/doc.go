// Package planner turns the hook lists into an ordered build plan.
//
// Planning is pure: it resolves every hook name to its source and output
// path and reports conflicts, but never touches the hook files themselves.
// Whether a source exists is decided when the plan is executed.
//
// Key responsibilities:
//   - Generate a BuildPlan with bundle operations first, then copies
//   - Reject names that are not a single path element
//   - Detect names listed twice, or in both lists, which would make two
//     operations write the same output path
package planner

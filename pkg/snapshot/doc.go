// Package snapshot implements the observable-state projector (component G):
// it folds the model store plus the adjacency/connectivity/circulation/
// constraints components into one deterministic State record, and renders
// that record into a stable prose form for an LLM driver to consume.
//
// Build mirrors dshills-dungo's own stage-composition style
// (dungeon.DefaultGenerator.Generate assembling an Artifact from its
// pipeline stages' outputs); FormatForLLM is grounded on
// Artifact.RenderText (pkg/dungeon/text.go), adapted to a sober,
// fully-deterministic heading style since this text form is read back into
// future prompts rather than printed once for a human.
package snapshot

// Package effects provides time-domain audio effects built on the delay
// line primitive: a feedback delay tap, a parallel-comb reverb, and a soft
// clipping distortion.
//
// Every effect owns its internal state (delay buffers, cursors) exclusively
// and processes a continuous stream sample by sample; state is deliberately
// not reset between buffers of the same stream. Buffers are mutated in
// place.
package effects

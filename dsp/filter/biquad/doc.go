// Package biquad provides second-order IIR filter primitives: a runtime
// [Section] holding normalized coefficients plus two delay registers, and
// Audio-EQ-Cookbook designers for lowpass, highpass, shelving and peaking
// responses.
//
// Coefficients are derived once at construction (or on an explicit
// re-design via [Section.SetCoefficients]) and immutable in between. The
// delay registers survive coefficient updates, so parameters can be changed
// on a live stream without a click from restarting the filter.
package biquad

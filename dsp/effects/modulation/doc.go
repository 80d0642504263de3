// Package modulation provides LFO-driven effects: tremolo (amplitude
// modulation) and flanger (modulated delay with feedback).
//
// Each effect advances a sinusoidal phase accumulator by
// 2*pi*rate/sampleRate per processed sample, wrapped modulo 2*pi, so phase
// stays continuous across arbitrarily long streams.
package modulation

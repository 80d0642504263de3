// Package dynamics provides level-dependent gain processors: a feed-forward
// compressor and a noise gate.
//
// Both track a single smoothed gain value. Smoothing uses one-pole
// coefficients of the form exp(-1/(ms*0.001*sampleRate)), so larger time
// constants move the gain more slowly. The compressor picks the attack
// coefficient whenever the instantaneous level is above the threshold and
// the release coefficient otherwise, regardless of whether the gain is
// currently rising or falling. Neither processor has lookahead, so fast
// transients pass through partially unattenuated while the gain settles.
package dynamics

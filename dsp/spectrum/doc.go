// Package spectrum provides frequency-domain transforms and bin measurements.
//
// FFT and IFFT accept any length. Power-of-two lengths run on planned FFTs;
// other lengths fall back to a direct transform so the round-trip contract
// holds regardless of framing. IFFT output is normalized by the length on
// both paths.
package spectrum

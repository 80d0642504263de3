// Package audiofile decodes audio files into float64 sample buffers and
// encodes buffers back to WAV.
//
// Decode dispatches on the file extension: .wav (16/24/32-bit integer PCM
// and 32-bit IEEE float), .mp3 and .ogg (Vorbis). Integer PCM is scaled
// into the nominal [-1, 1] range. Anything else fails with
// ErrUnsupportedFormat. Multi-channel files are decoded with channels
// interleaved; Deinterleave and Interleave convert between layouts.
package audiofile

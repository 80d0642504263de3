package biquad

// Coefficients holds the transfer function coefficients of one second-order
// section. a0 is normalized to 1 and not stored.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is a single biquad filter: one coefficient set plus two delay
// registers. Each Section owns its registers exclusively; to run the same
// response on several channels, create one Section per channel.
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
//
// The recurrence feeds the two most recent outputs through both the
// numerator and denominator taps:
//
//	y  = B0*x + B1*z1 + B2*z2 - A1*z1 - A2*z2
//	z2 = z1
//	z1 = y
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.z1 + s.B2*s.z2 - s.A1*s.z1 - s.A2*s.z2
	s.z2 = s.z1
	s.z1 = y

	return y
}

// ProcessBlock filters a block of samples in place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	z1, z2 := s.z1, s.z2

	for i, x := range buf {
		y := b0*x + b1*z1 + b2*z2 - a1*z1 - a2*z2
		z2 = z1
		z1 = y
		buf[i] = y
	}

	s.z1, s.z2 = z1, z2
}

// SetCoefficients installs a freshly designed coefficient set without
// touching the delay registers, preserving continuity on a live stream.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// Reset clears the delay registers to zero.
func (s *Section) Reset() {
	s.z1 = 0
	s.z2 = 0
}

// State returns the current delay registers [z1, z2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.z1, s.z2}
}

// SetState restores previously saved delay registers.
func (s *Section) SetState(state [2]float64) {
	s.z1 = state[0]
	s.z2 = state[1]
}

package hdr

import "math"

// SMPTE ST 2084 (PQ) constants.
const (
	pqM1 = 0.1593017578125
	pqM2 = 78.84375
	pqC1 = 0.8359375
	pqC2 = 18.8515625
	pqC3 = 18.6875
)

// PQEotf converts a PQ-coded signal in [0,1] to absolute luminance in cd/m².
func PQEotf(signal float64) float64 {
	vp := math.Pow(signal, 1.0/pqM2)
	num := math.Max(vp-pqC1, 0)
	den := pqC2 - pqC3*vp
	return 10000.0 * math.Pow(num/den, 1.0/pqM1)
}

// PQOetf converts absolute luminance in cd/m² to a PQ-coded signal in [0,1].
// Numeric inverse of PQEotf.
func PQOetf(luminance float64) float64 {
	y := math.Max(luminance/10000.0, 0)
	yp := math.Pow(y, pqM1)
	return math.Pow((pqC1+pqC2*yp)/(1.0+pqC3*yp), pqM2)
}

// ToneMapPQToSDR maps an HDR luminance value to an SDR target using the
// Reinhard operator.
func ToneMapPQToSDR(value, maxContentLuminance, targetLuminance float64) float64 {
	normalized := value / maxContentLuminance
	mapped := normalized / (1.0 + normalized)
	return mapped * targetLuminance
}

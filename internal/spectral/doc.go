// Package spectral turns blocks of signed bytes into complex spectral
// coefficients and back.
//
// Forward applies the normalized inverse DFT, so a block of n samples becomes
// n coefficients c[k] = 1/n Σ x[j]·e^{+2πijk/n}. Inverse applies the
// unnormalized forward DFT and keeps the real part, recovering the samples up
// to floating point error.
package spectral

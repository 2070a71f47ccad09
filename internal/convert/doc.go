// Package convert is the boundary between raw files and FEF containers.
// It chains block splitting, the spectral transform, the container codec and
// the optional encryption envelope in both directions.
package convert

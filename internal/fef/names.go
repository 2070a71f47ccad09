package fef

import "strconv"

// DefaultName returns "output<N>.txt" for the smallest positive N whose name
// is not taken.
func DefaultName(taken func(name string) bool) string {
	for i := 1; ; i++ {
		name := "output" + strconv.Itoa(i) + ".txt"
		if !taken(name) {
			return name
		}
	}
}

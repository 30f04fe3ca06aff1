//go:build !iheapstable

package iheap

// preserveStability selects the down-sift variant for the whole build.
// The default favors fewer comparisons; build with -tags iheapstable to
// keep equal-priority elements in their relative slot order through
// pops and re-sifts.
const preserveStability = false

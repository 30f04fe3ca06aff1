//go:build iheapstable

package iheap

const preserveStability = true

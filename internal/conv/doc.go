// Package conv provides bounds-checked integer conversions.
package conv

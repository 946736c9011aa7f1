// Package mathx provides the numeric helpers used across the toolkit.
//
// - Clamp: bound a value into [min, max]
// - Overflow: wrap a value around [min, max] in both directions
// - Rand/Rand0: inclusive random integers
// - DecToHex/HexToDec: base 16 conversions
package mathx

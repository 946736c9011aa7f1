// Package cli implements the stepkit command tree.
package cli

// Package core holds the numeric constraint, validation helpers and buffer
// utilities shared by the filter packages.
package core

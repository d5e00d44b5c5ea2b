// Package fmtest contains helpers for testing fixmerkle
// and packages that build on it.
package fmtest

// Package ranking compares seller offers for a product.
//
// Everything here is a pure function of its arguments: no I/O, no clock
// reads, no shared state. Callers pass the requester's position and the
// current local time, and may call into the package from any goroutine.
package ranking

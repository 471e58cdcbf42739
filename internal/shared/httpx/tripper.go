// Package httpx provides composable middleware for outbound HTTP clients.
package httpx

import "net/http"

// Constructor wraps an http.RoundTripper with additional behavior.
type Constructor func(http.RoundTripper) http.RoundTripper

// Chain is an immutable, ordered list of RoundTripper constructors.
type Chain struct {
	constructors []Constructor
}

// NewChain memorizes the given constructors. They are only invoked when
// Then is called.
func NewChain(constructors ...Constructor) Chain {
	return Chain{append([]Constructor(nil), constructors...)}
}

// Then wraps transport with every constructor in the chain, first constructor
// outermost, and returns the resulting RoundTripper. A nil transport means
// http.DefaultTransport. A chain may be reused across multiple Then calls.
func (c Chain) Then(transport http.RoundTripper) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	for i := range c.constructors {
		transport = c.constructors[len(c.constructors)-1-i](transport)
	}

	return transport
}

// Append returns a new chain with the given constructors added as the last
// ones in the request flow. The original chain is left untouched.
func (c Chain) Append(constructors ...Constructor) Chain {
	newCons := make([]Constructor, 0, len(c.constructors)+len(constructors))
	newCons = append(newCons, c.constructors...)
	newCons = append(newCons, constructors...)

	return Chain{newCons}
}

// RoundTripperFunc adapts a plain function to the http.RoundTripper
// interface, similar to http.HandlerFunc.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls the underlying function.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

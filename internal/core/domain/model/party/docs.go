// Package party describes the people an order refers to: the customer who
// placed it and the person it is delivered to.
//
// Customer is built by composition. It holds a Person plus customer-only
// data (a numeric id and a billing address), and both types satisfy the
// Contact interface so callers that only need a name and an address can
// accept either.
//
// Customer ids come from a CustomerIDGenerator passed to NewCustomer.
// SequenceGenerator is the default implementation; tests use their own
// generator to get deterministic ids.
package party

// Package declaration implements a validated, declarative property store
// for CSS-like style declarations.
//
// A [Registry] declares a fixed vocabulary of named properties, each with
// a [Choices] value domain and a default. A [Store] holds the explicitly
// set values for one node and routes every access through the shared
// descriptors, which validate, suppress no-op writes, and signal
// effective changes through the store's change callback. Types are
// re-exported through the root colosseum package for public consumption.
//
// The main entry points are [NewRegistry] and [NewStore].
package declaration

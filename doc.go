// Package colosseum provides a declarative, validated property store
// for the style object of a UI layout node.
//
// Users import this single package for the complete public API: the
// standard CSS property surface via [NewStyle], and the underlying
// engine (registries, descriptors, value domains) for declaring custom
// property vocabularies. The package validates values, tracks effective
// changes, and signals an owning layout through a change callback; it
// does not compute layout geometry, cascade values across a tree, or
// parse stylesheet text.
package colosseum

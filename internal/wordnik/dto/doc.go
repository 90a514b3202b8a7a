// Package dto holds the wire shapes of the Wordnik word API and converts
// them to model types.
//
// Each JSON type has a ToX method that returns the model value. Decoding is
// done by the wordnik package; nothing here performs I/O.
package dto

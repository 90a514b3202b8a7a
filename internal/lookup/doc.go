// Package lookup turns a parsed Request into a Result by calling the
// dictionary service and grouping what comes back.
//
// # Call Order
//
// Calls are made one at a time, each after the previous one returns:
//
//  1. Definitions (required; failure ends the lookup)
//  2. Pronunciation
//  3. Examples, hyphenation, thesaurus, frequency and etymology, each only
//     when its toggle is set
//  4. Audio, when requested
//
// With no toggles set a lookup makes exactly two calls. Audio adds two more
// when a clip is found: one for the clip list and one for the clip itself.
//
// # Grouping
//
// Aggregate groups records by exact headword. A lookup for "cat" may return
// records for "cat" and "Cat"; these become two groups, shown in the order
// the service first returned them.
package lookup

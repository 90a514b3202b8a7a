// Package model defines the core data structures used throughout
// the define application.
//
// # Lookup Records
//
// LookupRecord is one dictionary entry returned by the definitions endpoint:
//
//	rec := model.LookupRecord{
//	    Headword:     "cat",
//	    Gloss:        "A small <em>carnivorous</em> mammal.",
//	    PartOfSpeech: "noun",
//	}
//
// Records are plain values. They are copied into groups, so a caller that
// mutates its own copy never changes what has already been grouped.
//
// # Word Groups
//
// Groups collects records that share a headword, keeping the order in which
// headwords were first seen:
//
//	groups := model.NewGroups()
//	groups.Add(rec)
//	for _, g := range groups.All() {
//	    fmt.Println(g.Headword, len(g.Records))
//	}
//
// # Vocabulary
//
// PartsOfSpeech and PronunciationFormats list the values the remote service
// accepts; DefaultDictionary is the source used when none is requested.
package model

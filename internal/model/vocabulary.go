package model

import "slices"

// DefaultDictionary is the source dictionary used when none is requested,
// and the one pronunciations are always fetched from.
const DefaultDictionary = "ahd-5"

// DefaultPronunciationFormat is the transcription format requested when
// the user does not pick one.
const DefaultPronunciationFormat = "ahd-5"

// PartsOfSpeech lists the part-of-speech tags the service understands.
var PartsOfSpeech = []string{
	"noun",
	"adjective",
	"verb",
	"adverb",
	"interjection",
	"pronoun",
	"preposition",
	"abbreviation",
	"affix",
	"article",
	"auxiliary-verb",
	"conjunction",
	"definite-article",
	"family-name",
	"given-name",
	"idiom",
	"imperative",
	"noun-plural",
	"noun-posessive",
	"past-participle",
	"phrasal-prefix",
	"proper-noun",
	"proper-noun-plural",
	"proper-noun-posessive",
	"suffix",
	"verb-intransitive",
	"verb-transitive",
}

// PronunciationFormats lists the supported transcription formats.
var PronunciationFormats = []string{
	"ahd-5",
	"arpabet",
	"gcide-diacritical",
	"IPA",
}

// IsPartOfSpeech reports whether s is one of PartsOfSpeech.
func IsPartOfSpeech(s string) bool {
	return slices.Contains(PartsOfSpeech, s)
}

// IsPronunciationFormat reports whether s is one of PronunciationFormats.
// The comparison is case-sensitive ("IPA", not "ipa").
func IsPronunciationFormat(s string) bool {
	return slices.Contains(PronunciationFormats, s)
}

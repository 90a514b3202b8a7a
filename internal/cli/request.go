package cli

import (
	"slices"

	"github.com/handiism/define/internal/model"
)

// DefaultLimit is the number of definitions requested when -l is absent.
const DefaultLimit uint8 = 5

// Request describes one lookup. It is built once by Parse and is
// read-only afterwards; every accessor returns a copy.
type Request struct {
	word                string
	partOfSpeech        string
	dictionaries        []string
	limit               uint8
	includeRelated      bool
	useCanonical        bool
	pronunciationFormat string

	audio       bool
	examples    bool
	hyphenation bool
	thesaurus   bool
	etymology   bool

	frequency bool
	startYear *uint16
	endYear   *uint16

	warnings []string
}

func newRequest(word string) *Request {
	return &Request{
		word:                word,
		limit:               DefaultLimit,
		pronunciationFormat: model.DefaultPronunciationFormat,
	}
}

// Word returns the word to look up.
func (r *Request) Word() string { return r.word }

// PartOfSpeech returns the requested part of speech, if one was given.
func (r *Request) PartOfSpeech() (string, bool) {
	return r.partOfSpeech, r.partOfSpeech != ""
}

// Dictionaries returns the source dictionaries in the order given.
// It always holds at least one id.
func (r *Request) Dictionaries() []string { return slices.Clone(r.dictionaries) }

// Limit returns the maximum number of definitions to request.
func (r *Request) Limit() uint8 { return r.limit }

// IncludeRelated reports whether related words should accompany definitions.
func (r *Request) IncludeRelated() bool { return r.includeRelated }

// UseCanonical reports whether the service should reduce the word to its root.
func (r *Request) UseCanonical() bool { return r.useCanonical }

// PronunciationFormat returns the transcription format to request.
func (r *Request) PronunciationFormat() string { return r.pronunciationFormat }

// Audio reports whether a spoken pronunciation should be played.
func (r *Request) Audio() bool { return r.audio }

// Examples reports whether usage examples were requested.
func (r *Request) Examples() bool { return r.examples }

// Hyphenation reports whether syllable information was requested.
func (r *Request) Hyphenation() bool { return r.hyphenation }

// Thesaurus reports whether synonyms and antonyms were requested.
func (r *Request) Thesaurus() bool { return r.thesaurus }

// Etymology reports whether etymology data was requested.
func (r *Request) Etymology() bool { return r.etymology }

// Frequency reports whether usage-over-time data was requested.
func (r *Request) Frequency() bool { return r.frequency }

// StartYear returns the first year of the frequency range, if given.
func (r *Request) StartYear() (uint16, bool) {
	if r.startYear == nil {
		return 0, false
	}
	return *r.startYear, true
}

// EndYear returns the last year of the frequency range. It is only ever set
// after StartYear.
func (r *Request) EndYear() (uint16, bool) {
	if r.endYear == nil {
		return 0, false
	}
	return *r.endYear, true
}

// Warnings returns notes about options that were accepted but had no effect.
func (r *Request) Warnings() []string { return slices.Clone(r.warnings) }

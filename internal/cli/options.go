package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/handiism/define/internal/model"
)

// option describes one recognised command-line option.
//
// Toggles have a nil collect func. Options with a collect func move the
// parser into the collecting state; collect is called once per value and
// reports whether the option is now complete.
type option struct {
	// aliases are the spellings shown in the usage text. Matching is
	// case-insensitive.
	aliases []string
	arg     string
	help    string

	// variadic options end their value list at the next option token, which
	// is then re-read as an option. Any other option seeing an option token
	// while it still wants a value is an error.
	variadic bool
	usage    bool
	// values lists the accepted values, when the option has a fixed set.
	values []string

	set     func(r *Request)
	collect func(r *Request, n int, value string) (done bool, err error)
}

func (o *option) matches(name string) bool {
	return slices.ContainsFunc(o.aliases, func(a string) bool {
		return strings.ToLower(a) == name
	})
}

var options = []*option{
	{
		aliases:  []string{"d", "dictionary", "dictionaries"},
		arg:      "[...]",
		help:     "Source dictionaries to return definitions from, separated by a space",
		variadic: true,
		collect: func(r *Request, _ int, value string) (bool, error) {
			if !slices.Contains(r.dictionaries, value) {
				r.dictionaries = append(r.dictionaries, value)
			}
			return false, nil
		},
	},
	{
		aliases: []string{"s", "partOfSpeech"},
		arg:     "[...]",
		help:    "The part of speech of the word whose definition is requested",
		values:  model.PartsOfSpeech,
		collect: func(r *Request, _ int, value string) (bool, error) {
			if !model.IsPartOfSpeech(value) {
				return false, &UsageError{
					Msg:   "unsupported part of speech " + strconv.Quote(value),
					Valid: slices.Clone(model.PartsOfSpeech),
				}
			}
			r.partOfSpeech = value
			return true, nil
		},
	},
	{
		aliases: []string{"l", "limit"},
		arg:     "[...]",
		help:    "Maximum number of results to return",
		collect: func(r *Request, _ int, value string) (bool, error) {
			n, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return false, usageErrorf("limit must be a number between 0 and 255, got %q", value)
			}
			r.limit = uint8(n)
			return true, nil
		},
	},
	{
		aliases: []string{"a", "audio"},
		help:    "Request an audio pronunciation of the word",
		set:     func(r *Request) { r.audio = true },
	},
	{
		aliases: []string{"r", "includeRelated"},
		help:    "Request related words with definitions",
		set:     func(r *Request) { r.includeRelated = true },
	},
	{
		aliases: []string{"c", "useCanonical"},
		help:    "Tries to return the correct word root (e.g. 'cats' -> 'cat')",
		set:     func(r *Request) { r.useCanonical = true },
	},
	{
		aliases: []string{"e", "etymology"},
		help:    "Request etymology data",
		set:     func(r *Request) { r.etymology = true },
	},
	{
		aliases: []string{"x", "examples"},
		help:    "Request examples for the word",
		set:     func(r *Request) { r.examples = true },
	},
	{
		aliases: []string{"f", "frequency"},
		arg:     "[start end]",
		help:    "Request word usage over time, optionally between two years",
		set:     func(r *Request) { r.frequency = true },
		collect: func(r *Request, n int, value string) (bool, error) {
			year, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return false, usageErrorf("frequency years must be numbers, got %q", value)
			}
			y := uint16(year)
			if n == 0 {
				r.startYear = &y
				return false, nil
			}
			r.endYear = &y
			return true, nil
		},
	},
	{
		aliases: []string{"h", "hyphenation"},
		help:    "Request syllable information for the word",
		set:     func(r *Request) { r.hyphenation = true },
	},
	{
		aliases:  []string{"p", "pronunciation"},
		arg:      "[...]",
		help:     "Request text pronunciation for the word with the specified pronunciation type",
		variadic: true,
		values:   model.PronunciationFormats,
		collect: func(r *Request, _ int, value string) (bool, error) {
			if !model.IsPronunciationFormat(value) {
				return false, &UsageError{
					Msg:   "unsupported pronunciation type format " + strconv.Quote(value),
					Valid: slices.Clone(model.PronunciationFormats),
				}
			}
			r.pronunciationFormat = value
			return true, nil
		},
	},
	{
		aliases: []string{"t", "thesaurus"},
		help:    "Request synonym and antonym information for the word",
		set:     func(r *Request) { r.thesaurus = true },
	},
	{
		aliases: []string{"u", "usage", "help"},
		help:    "Display this usage guide",
		usage:   true,
	},
}

// flagNames returns the aliases as typed on the command line.
func (o *option) flagNames() []string {
	names := make([]string, len(o.aliases))
	for i, a := range o.aliases {
		if len(a) == 1 {
			names[i] = "-" + a
		} else {
			names[i] = "--" + a
		}
	}
	return names
}

// lookupOption finds the option for a normalized name.
func lookupOption(name string) *option {
	for _, o := range options {
		if o.matches(name) {
			return o
		}
	}
	return nil
}

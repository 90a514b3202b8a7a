package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/define/internal/model"
)

func parseOK(t *testing.T, tokens ...string) *Request {
	t.Helper()
	req, err := Parse(tokens)
	require.NoError(t, err)
	require.NotNil(t, req)
	return req
}

func requireUsageError(t *testing.T, err error) *UsageError {
	t.Helper()
	var ue *UsageError
	require.ErrorAs(t, err, &ue)
	return ue
}

func TestParse_WordIsFirstToken(t *testing.T) {
	tests := [][]string{
		{"cat"},
		{"well-known"},
		{"cat", "-a"},
		{"cat", "-d", "ahd-5", "-l", "3"},
		{"Über", "--useCanonical"},
	}

	for _, tokens := range tests {
		t.Run(tokens[0], func(t *testing.T) {
			req := parseOK(t, tokens...)
			assert.Equal(t, tokens[0], req.Word())
		})
	}
}

func TestParse_FirstTokenErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"empty", nil},
		{"short option", []string{"-a", "cat"}},
		{"long option", []string{"--help"}},
		{"dash only", []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.tokens)
			assert.Nil(t, req)
			requireUsageError(t, err)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	req := parseOK(t, "cat")

	assert.Equal(t, []string{model.DefaultDictionary}, req.Dictionaries())
	assert.Equal(t, DefaultLimit, req.Limit())
	assert.Equal(t, model.DefaultPronunciationFormat, req.PronunciationFormat())
	_, ok := req.PartOfSpeech()
	assert.False(t, ok)
	_, ok = req.StartYear()
	assert.False(t, ok)
	assert.False(t, req.Audio())
	assert.False(t, req.IncludeRelated())
	assert.False(t, req.UseCanonical())
	assert.False(t, req.Frequency())
	assert.Empty(t, req.Warnings())
}

func TestParse_DictionariesAndLimit(t *testing.T) {
	req := parseOK(t, "cat", "-d", "ahd-5", "-d", "century", "-l", "3")

	assert.Equal(t, []string{"ahd-5", "century"}, req.Dictionaries())
	assert.EqualValues(t, 3, req.Limit())
}

func TestParse_DictionariesVariadic(t *testing.T) {
	req := parseOK(t, "cat", "--dictionaries", "ahd-5", "century", "wiktionary", "-a")

	assert.Equal(t, []string{"ahd-5", "century", "wiktionary"}, req.Dictionaries())
	assert.True(t, req.Audio(), "option after the values must be re-read")

	t.Run("duplicates keep first position", func(t *testing.T) {
		req := parseOK(t, "cat", "-d", "century", "ahd-5", "century", "-d", "ahd-5")
		assert.Equal(t, []string{"century", "ahd-5"}, req.Dictionaries())
	})
}

func TestParse_EmptyDictionaryListGetsDefault(t *testing.T) {
	tests := [][]string{
		{"cat", "-d"},
		{"cat", "-d", "-a"},
	}

	for _, tokens := range tests {
		req := parseOK(t, tokens...)
		assert.Equal(t, []string{model.DefaultDictionary}, req.Dictionaries())
	}
}

func TestParse_Toggles(t *testing.T) {
	req := parseOK(t, "cat", "-a", "-R", "--useCanonical", "-x", "-H", "--THESAURUS", "-e")

	assert.True(t, req.Audio())
	assert.True(t, req.IncludeRelated())
	assert.True(t, req.UseCanonical())
	assert.True(t, req.Examples())
	assert.True(t, req.Hyphenation())
	assert.True(t, req.Thesaurus())
	assert.True(t, req.Etymology())
}

func TestParse_Frequency(t *testing.T) {
	t.Run("two years", func(t *testing.T) {
		req := parseOK(t, "cat", "-f", "1950", "2000")
		start, ok := req.StartYear()
		require.True(t, ok)
		assert.EqualValues(t, 1950, start)
		end, ok := req.EndYear()
		require.True(t, ok)
		assert.EqualValues(t, 2000, end)
		assert.True(t, req.Frequency())
	})

	t.Run("one year at end of stream", func(t *testing.T) {
		req := parseOK(t, "cat", "-f", "1950")
		start, ok := req.StartYear()
		require.True(t, ok)
		assert.EqualValues(t, 1950, start)
		_, ok = req.EndYear()
		assert.False(t, ok)
	})

	t.Run("no years", func(t *testing.T) {
		req := parseOK(t, "cat", "--frequency")
		assert.True(t, req.Frequency())
		_, ok := req.StartYear()
		assert.False(t, ok)
	})

	t.Run("closed after two years", func(t *testing.T) {
		_, err := Parse([]string{"cat", "-f", "1950", "2000", "2010"})
		requireUsageError(t, err)
	})

	t.Run("option before second year", func(t *testing.T) {
		_, err := Parse([]string{"cat", "-f", "1950", "-a"})
		requireUsageError(t, err)
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, err := Parse([]string{"cat", "-f", "nineteen"})
		requireUsageError(t, err)
	})
}

func TestParse_PartOfSpeech(t *testing.T) {
	req := parseOK(t, "cat", "-s", "noun")
	pos, ok := req.PartOfSpeech()
	require.True(t, ok)
	assert.Equal(t, "noun", pos)

	_, err := Parse([]string{"cat", "-s", "notareal"})
	ue := requireUsageError(t, err)
	assert.Len(t, ue.Valid, 27)
	assert.Contains(t, ue.Error(), "verb-transitive")
}

func TestParse_Pronunciation(t *testing.T) {
	req := parseOK(t, "cat", "-p", "IPA")
	assert.Equal(t, "IPA", req.PronunciationFormat())

	req = parseOK(t, "cat", "-p", "-a")
	assert.Equal(t, model.DefaultPronunciationFormat, req.PronunciationFormat())
	assert.True(t, req.Audio())

	_, err := Parse([]string{"cat", "--pronunciation", "klingon"})
	ue := requireUsageError(t, err)
	assert.Equal(t, model.PronunciationFormats, ue.Valid)
}

func TestParse_Limit(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint8
		wantErr bool
	}{
		{"small", "3", 3, false},
		{"zero", "0", 0, false},
		{"max", "255", 255, false},
		{"overflow", "256", 0, true},
		{"negative", "-1", 0, true},
		{"word", "three", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse([]string{"cat", "-l", tt.value})
			if tt.wantErr {
				requireUsageError(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Limit())
		})
	}
}

func TestParse_ValueOptionFollowedByOption(t *testing.T) {
	tests := [][]string{
		{"cat", "-l", "-a"},
		{"cat", "-s", "--audio"},
	}

	for _, tokens := range tests {
		_, err := Parse(tokens)
		requireUsageError(t, err)
	}
}

func TestParse_StrayValue(t *testing.T) {
	_, err := Parse([]string{"cat", "dog"})
	requireUsageError(t, err)

	_, err = Parse([]string{"cat", "-a", "dog"})
	requireUsageError(t, err)

	_, err = Parse([]string{"cat", "-l", "3", "4"})
	requireUsageError(t, err)
}

func TestParse_UnknownOption(t *testing.T) {
	t.Run("with a value", func(t *testing.T) {
		_, err := Parse([]string{"cat", "--bogus", "x"})
		ue := requireUsageError(t, err)
		assert.Contains(t, ue.Msg, "bogus")
	})

	t.Run("followed by option", func(t *testing.T) {
		_, err := Parse([]string{"cat", "--bogus", "-a"})
		requireUsageError(t, err)
	})

	t.Run("at end of stream", func(t *testing.T) {
		req := parseOK(t, "cat", "-a", "--bogus")
		assert.True(t, req.Audio())
		require.Len(t, req.Warnings(), 1)
		assert.Contains(t, req.Warnings()[0], "bogus")
	})
}

func TestParse_Help(t *testing.T) {
	for _, flag := range []string{"-u", "--usage", "--help", "-HELP"} {
		t.Run(flag, func(t *testing.T) {
			req, err := Parse([]string{"cat", "-a", flag, "--bogus", "x"})
			assert.Nil(t, req)
			assert.True(t, errors.Is(err, ErrHelpRequested))
		})
	}
}

func TestParse_HelpAfterVariadic(t *testing.T) {
	_, err := Parse([]string{"cat", "-d", "ahd-5", "--help"})
	assert.ErrorIs(t, err, ErrHelpRequested)
}

func TestRequest_AccessorsReturnCopies(t *testing.T) {
	req := parseOK(t, "cat", "-d", "ahd-5", "century")

	dicts := req.Dictionaries()
	dicts[0] = "changed"

	assert.Equal(t, []string{"ahd-5", "century"}, req.Dictionaries())
}

func TestTransitions_TableIsComplete(t *testing.T) {
	for _, s := range []stateKind{stateIdle, stateCollecting} {
		for _, c := range []tokenClass{classValue, classOption} {
			assert.NotNil(t, transitions[s][c], "state %d class %d", s, c)
		}
	}
}

func TestClassifyAndNormalize(t *testing.T) {
	assert.Equal(t, classOption, classify("-d"))
	assert.Equal(t, classOption, classify("--partOfSpeech"))
	assert.Equal(t, classValue, classify("ahd-5"))
	assert.Equal(t, classValue, classify("noun-plural"))

	assert.Equal(t, "partofspeech", normalize("--partOfSpeech"))
	assert.Equal(t, "d", normalize("-D"))
}

func TestWriteUsage(t *testing.T) {
	var buf bytes.Buffer
	WriteUsage(&buf)

	out := buf.String()
	for _, want := range []string{
		"define <word> [OPTIONS]",
		"--dictionaries",
		"--partOfSpeech",
		"--pronunciation",
		"--help",
		"Display this usage guide",
	} {
		assert.Contains(t, out, want)
	}
}

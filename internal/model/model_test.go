package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_FirstSeenOrder(t *testing.T) {
	g := NewGroups()
	g.Add(LookupRecord{Headword: "cat", Gloss: "1"})
	g.Add(LookupRecord{Headword: "Cat", Gloss: "2"})
	g.Add(LookupRecord{Headword: "cat", Gloss: "3"})
	g.Add(LookupRecord{Headword: "cats", Gloss: "4"})

	assert.Equal(t, []string{"cat", "Cat", "cats"}, g.Headwords())
	assert.Equal(t, 3, g.Len())

	cat := g.All()[0]
	require.Len(t, cat.Records, 2)
	assert.Equal(t, "1", cat.Records[0].Gloss)
	assert.Equal(t, "3", cat.Records[1].Gloss)
}

func TestGroups_SetPronunciation(t *testing.T) {
	g := NewGroups()
	g.Add(LookupRecord{Headword: "a"})
	g.Add(LookupRecord{Headword: "b"})

	p := &Pronunciation{Raw: "(ā)", Format: DefaultPronunciationFormat}
	g.SetPronunciation(p)

	for _, wg := range g.All() {
		assert.Same(t, p, wg.Pronunciation, "group %q", wg.Headword)
	}
}

func TestGroups_AllReturnsCopies(t *testing.T) {
	g := NewGroups()
	g.Add(LookupRecord{Headword: "a", Gloss: "original"})

	all := g.All()
	all[0].Records[0].Gloss = "changed"

	assert.Equal(t, "original", g.All()[0].Records[0].Gloss)
}

func TestGroups_Empty(t *testing.T) {
	g := NewGroups()
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Headwords())
}

func TestVocabulary(t *testing.T) {
	assert.Len(t, PartsOfSpeech, 27)
	assert.Len(t, PronunciationFormats, 4)

	tests := []struct {
		input string
		pos   bool
		fmt   bool
	}{
		{"noun", true, false},
		{"verb-transitive", true, false},
		{"Noun", false, false},
		{"IPA", false, true},
		{"ipa", false, false},
		{"ahd-5", false, true},
		{"notareal", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.pos, IsPartOfSpeech(tt.input))
			assert.Equal(t, tt.fmt, IsPronunciationFormat(tt.input))
		})
	}
}

func TestAudioClip_Label(t *testing.T) {
	tests := []struct {
		name string
		clip AudioClip
		want string
	}{
		{"id3 title wins", AudioClip{Title: "cat", AttributionText: "attr", URL: "u"}, "cat"},
		{"attribution", AudioClip{AttributionText: "attr", CreatedBy: "me", URL: "u"}, "attr"},
		{"creator", AudioClip{CreatedBy: "me", URL: "u"}, "me"},
		{"url fallback", AudioClip{URL: "u"}, "u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clip.Label())
		})
	}
}

func TestEnrichment_IsEmpty(t *testing.T) {
	var nilEnrichment *Enrichment
	assert.True(t, nilEnrichment.IsEmpty())
	assert.True(t, (&Enrichment{}).IsEmpty())
	assert.False(t, (&Enrichment{Etymologies: []string{"x"}}).IsEmpty())
	assert.False(t, (&Enrichment{Frequency: &Frequency{}}).IsEmpty())
}

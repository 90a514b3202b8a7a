package present

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/define/internal/lookup"
	"github.com/handiism/define/internal/model"
)

func newPlainPresenter(buf *bytes.Buffer) *Presenter {
	r := lipgloss.NewRenderer(buf)
	r.SetColorProfile(termenv.Ascii)
	return New(buf, r)
}

func TestPresenter_RenderGroups(t *testing.T) {
	var buf bytes.Buffer
	records := []model.LookupRecord{
		{Headword: "cat", Gloss: "A small <em>feline</em>.", PartOfSpeech: "noun", AttributionText: "from AHD"},
		{Headword: "Cat", Gloss: "A tractor.", PartOfSpeech: "noun", AttributionText: "from Century"},
		{Headword: "cat", Gloss: "To vomit.", PartOfSpeech: "verb", AttributionText: "from AHD"},
	}
	res := &lookup.Result{
		Word:   "cat",
		Groups: lookup.Aggregate(records, &model.Pronunciation{Raw: "kăt"}),
	}

	require.NoError(t, newPlainPresenter(&buf).Render(res))

	want := "cat (kăt)\n\n" +
		"noun - from AHD\n\t* A small feline.\n\n" +
		"verb - from AHD\n\t* To vomit.\n\n" +
		"Cat (kăt)\n\n" +
		"noun - from Century\n\t* A tractor.\n\n"
	assert.Equal(t, want, buf.String())
}

func TestPresenter_RenderWithoutPronunciation(t *testing.T) {
	var buf bytes.Buffer
	res := &lookup.Result{
		Groups: lookup.Aggregate([]model.LookupRecord{{Headword: "x", Gloss: "y", PartOfSpeech: "noun"}}, nil),
	}

	require.NoError(t, newPlainPresenter(&buf).Render(res))
	assert.Equal(t, "x\n\nnoun - \n\t* y\n\n", buf.String())
}

func TestPresenter_RenderEnrichment(t *testing.T) {
	var buf bytes.Buffer
	res := &lookup.Result{
		Groups: model.NewGroups(),
		Enrichment: &model.Enrichment{
			Examples:  []model.Example{{Text: "The cat sat.", Title: "Mats", Year: 1999}},
			Syllables: []model.Syllable{{Text: "cat", Type: "stress"}, {Text: "er"}},
			Related: []model.RelatedWords{
				{Relationship: "synonym", Words: []string{"feline", "puss"}},
				{Relationship: "antonym", Words: []string{"dog"}},
			},
			Frequency:   &model.Frequency{TotalCount: 12, Years: []model.YearCount{{Year: 1999, Count: 5}}},
			Etymologies: []string{"<ety>[OE. <ets>catt</ets>]</ety>"},
		},
		Clip: &model.AudioClip{URL: "https://x/cat.mp3", AttributionText: "from AHD"},
	}

	require.NoError(t, newPlainPresenter(&buf).Render(res))
	out := buf.String()

	for _, want := range []string{
		"Examples\n\t* The cat sat. (Mats, 1999)\n",
		"Syllables\n\tcat·er\n",
		"Synonyms\n\tfeline, puss\n",
		"Antonyms\n\tdog\n",
		"Frequency\n\tTotal: 12\n",
		"1999",
		"Etymology\n\t* [OE. catt]\n",
		"♪ from AHD\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPresenter_EmptyEnrichmentPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	res := &lookup.Result{Groups: model.NewGroups(), Enrichment: &model.Enrichment{}}

	require.NoError(t, newPlainPresenter(&buf).Render(res))
	assert.Empty(t, buf.String())
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "[OE. catt]", StripMarkup("<ety>[OE. <ets>catt</ets>]</ety>"))
	assert.Equal(t, "a b", StripMarkup("  a\n\tb "))
}

func TestRelationTitle(t *testing.T) {
	assert.Equal(t, "Synonyms", relationTitle("synonym"))
	assert.Equal(t, "Antonyms", relationTitle("antonym"))
	assert.Equal(t, "Hypernym", relationTitle("hypernym"))
	assert.Equal(t, "Related", relationTitle(""))
}

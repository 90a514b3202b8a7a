package dto

import (
	"github.com/handiism/define/internal/model"
)

// JSONExampleSearch is the examples response envelope.
type JSONExampleSearch struct {
	Examples []JSONExample `json:"examples"`
}

// JSONExample is a single usage example.
type JSONExample struct {
	Text  string `json:"text"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// ToExamples converts the envelope, dropping examples without text.
func (js *JSONExampleSearch) ToExamples() []model.Example {
	out := make([]model.Example, 0, len(js.Examples))
	for _, e := range js.Examples {
		if e.Text == "" {
			continue
		}
		out = append(out, model.Example{Text: e.Text, Title: e.Title, Year: e.Year})
	}
	return out
}

// JSONSyllable is one element of the hyphenation array.
type JSONSyllable struct {
	Text string `json:"text"`
	Type string `json:"type"`
	Seq  int    `json:"seq"`
}

// ToSyllable converts the element to a model.Syllable.
func (js *JSONSyllable) ToSyllable() model.Syllable {
	return model.Syllable{Text: js.Text, Type: js.Type}
}

// JSONRelated is one element of the relatedWords array.
type JSONRelated struct {
	RelationshipType string   `json:"relationshipType"`
	Words            []string `json:"words"`
}

// ToRelatedWords converts the element to a model.RelatedWords.
func (jr *JSONRelated) ToRelatedWords() model.RelatedWords {
	return model.RelatedWords{Relationship: jr.RelationshipType, Words: jr.Words}
}

// JSONFrequencySummary is the frequency response.
type JSONFrequencySummary struct {
	TotalCount int                 `json:"totalCount"`
	Frequency  []JSONYearFrequency `json:"frequency"`
}

// JSONYearFrequency is the count for a single year.
type JSONYearFrequency struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// ToFrequency converts the summary to a model.Frequency.
func (jf *JSONFrequencySummary) ToFrequency() *model.Frequency {
	f := &model.Frequency{TotalCount: jf.TotalCount}
	for _, y := range jf.Frequency {
		f.Years = append(f.Years, model.YearCount{Year: y.Year, Count: y.Count})
	}
	return f
}

package dto

import (
	"github.com/handiism/define/internal/model"
)

// JSONDefinition is one element of the definitions array.
//
// Fields are pointers so that a missing key can be told apart from an
// empty string.
type JSONDefinition struct {
	Word             *string `json:"word"`
	Text             *string `json:"text"`
	PartOfSpeech     *string `json:"partOfSpeech"`
	AttributionText  *string `json:"attributionText"`
	SourceDictionary *string `json:"sourceDictionary"`
}

// ToRecord converts the element to a model.LookupRecord.
//
// It reports false when the headword or the gloss is missing, in which case
// the element cannot be shown and should be skipped.
func (jd *JSONDefinition) ToRecord() (model.LookupRecord, bool) {
	if jd.Word == nil || jd.Text == nil {
		return model.LookupRecord{}, false
	}
	return model.LookupRecord{
		Headword:         *jd.Word,
		Gloss:            *jd.Text,
		PartOfSpeech:     deref(jd.PartOfSpeech),
		AttributionText:  deref(jd.AttributionText),
		SourceDictionary: deref(jd.SourceDictionary),
	}, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package dto

import (
	"github.com/handiism/define/internal/model"
)

// JSONPronunciation is one element of the pronunciations array.
type JSONPronunciation struct {
	Raw     string `json:"raw"`
	RawType string `json:"rawType"`
}

// ToPronunciation converts the element to a model.Pronunciation.
func (jp *JSONPronunciation) ToPronunciation() *model.Pronunciation {
	return &model.Pronunciation{Raw: jp.Raw, Format: jp.RawType}
}

// JSONAudio is one element of the audio array.
type JSONAudio struct {
	FileURL         string `json:"fileUrl"`
	AttributionText string `json:"attributionText"`
	CreatedBy       string `json:"createdBy"`
}

// ToAudioClip converts the element to a model.AudioClip without data.
// The caller downloads FileURL and fills in Data.
func (ja *JSONAudio) ToAudioClip() *model.AudioClip {
	return &model.AudioClip{
		URL:             ja.FileURL,
		AttributionText: ja.AttributionText,
		CreatedBy:       ja.CreatedBy,
	}
}

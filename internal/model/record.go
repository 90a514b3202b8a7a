package model

// LookupRecord represents a single dictionary entry.
//
// LookupRecord contains the definition data for one sense of a word:
//   - Headword, used to group records that define the same word
//   - Gloss, the definition text (may embed an <em>…</em> span)
//   - Part of speech and attribution for display
//   - The id of the dictionary it came from
type LookupRecord struct {
	// Headword is the canonical word this entry defines.
	Headword string

	// Gloss is the definition text.
	Gloss string

	// PartOfSpeech is the tag the source dictionary assigned, if any.
	PartOfSpeech string

	// AttributionText credits the source dictionary.
	AttributionText string

	// SourceDictionary is the id of the dictionary, e.g. "ahd-5".
	SourceDictionary string
}

// Pronunciation holds the single transcription fetched for the input word.
type Pronunciation struct {
	// Raw is the transcription as returned by the service, e.g. "(kăt)".
	Raw string

	// Format is the transcription format that was requested.
	Format string
}

// AudioClip is a spoken pronunciation fetched from the audio endpoint.
type AudioClip struct {
	// URL is where the clip bytes were fetched from.
	URL string

	// Data is the raw clip payload (usually MP3).
	Data []byte

	// AttributionText credits the clip's source.
	AttributionText string

	// CreatedBy is the speaker or uploader, when the service reports one.
	CreatedBy string

	// Title is read from the clip's ID3 tag, if it has one.
	Title string
}

// Label returns a short human-readable description of the clip.
func (c *AudioClip) Label() string {
	switch {
	case c.Title != "":
		return c.Title
	case c.AttributionText != "":
		return c.AttributionText
	case c.CreatedBy != "":
		return c.CreatedBy
	default:
		return c.URL
	}
}

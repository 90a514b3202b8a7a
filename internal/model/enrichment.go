package model

// Example is a usage example quoted from a published text.
type Example struct {
	Text  string
	Title string
	Year  int
}

// Syllable is one hyphenation segment of a word.
type Syllable struct {
	Text string
	// Type is "stress", "secondary stress", or empty.
	Type string
}

// RelatedWords lists words sharing one relationship with the input word.
type RelatedWords struct {
	// Relationship is e.g. "synonym" or "antonym".
	Relationship string
	Words        []string
}

// YearCount is the number of occurrences of a word in one year.
type YearCount struct {
	Year  int
	Count int
}

// Frequency is the usage of a word over a range of years.
type Frequency struct {
	TotalCount int
	Years      []YearCount
}

// Enrichment carries the optional results requested by toggles other than
// audio. A nil or empty field means the data was not requested or the
// call produced nothing; the two are not distinguished.
type Enrichment struct {
	Examples    []Example
	Syllables   []Syllable
	Related     []RelatedWords
	Frequency   *Frequency
	Etymologies []string
}

// IsEmpty reports whether no enrichment data is present.
func (e *Enrichment) IsEmpty() bool {
	return e == nil || (len(e.Examples) == 0 &&
		len(e.Syllables) == 0 &&
		len(e.Related) == 0 &&
		e.Frequency == nil &&
		len(e.Etymologies) == 0)
}

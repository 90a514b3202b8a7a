package wordnik

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	dhttp "github.com/handiism/define/internal/http"
	"github.com/handiism/define/internal/model"
	"github.com/handiism/define/internal/wordnik/dto"
)

// DefaultBaseURL is the root of the Wordnik v4 word API.
const DefaultBaseURL = "https://api.wordnik.com/v4/word.json"

// Endpoint names, also used as FetchError.Endpoint.
const (
	EndpointDefinitions    = "definitions"
	EndpointPronunciations = "pronunciations"
	EndpointAudio          = "audio"
	EndpointAudioFile      = "audio file"
	EndpointExamples       = "examples"
	EndpointHyphenation    = "hyphenation"
	EndpointRelatedWords   = "relatedWords"
	EndpointFrequency      = "frequency"
	EndpointEtymologies    = "etymologies"
)

// Transport performs GET requests. The internal/http Client satisfies it.
type Transport interface {
	Get(ctx context.Context, rawURL string, query url.Values) ([]byte, error)
	DownloadBytes(ctx context.Context, rawURL string) ([]byte, error)
}

// Client calls the Wordnik word endpoints.
//
// Every method makes exactly one Transport call, except Audio which makes
// a second one to download the clip. Failures are returned as *FetchError.
type Client struct {
	baseURL   string
	apiKey    string
	transport Transport
	log       *slog.Logger
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, apiKey string, transport Transport, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		transport: transport,
		log:       logger.With("adapter", "wordnik"),
	}
}

// DefinitionsParams selects what the definitions endpoint returns.
type DefinitionsParams struct {
	Word           string
	Dictionaries   []string
	PartOfSpeech   string
	Limit          uint8
	IncludeRelated bool
	UseCanonical   bool
}

// Definitions fetches the definitions of a word.
//
// Elements missing a headword or gloss are skipped with a warning. If no
// element is usable the error is a KindEmpty *FetchError.
func (c *Client) Definitions(ctx context.Context, p DefinitionsParams) ([]model.LookupRecord, error) {
	q := url.Values{
		"includeRelated":     {strconv.FormatBool(p.IncludeRelated)},
		"useCanonical":       {strconv.FormatBool(p.UseCanonical)},
		"sourceDictionaries": {strings.Join(p.Dictionaries, ",")},
		"limit":              {strconv.Itoa(int(p.Limit))},
	}
	if p.PartOfSpeech != "" {
		q.Set("partOfSpeech", p.PartOfSpeech)
	}

	var elems []json.RawMessage
	if err := c.fetch(ctx, EndpointDefinitions, p.Word, q, &elems); err != nil {
		return nil, err
	}

	records := make([]model.LookupRecord, 0, len(elems))
	for i, raw := range elems {
		var jd dto.JSONDefinition
		if err := json.Unmarshal(raw, &jd); err != nil {
			c.log.WarnContext(ctx, "skipping malformed definition",
				slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		rec, ok := jd.ToRecord()
		if !ok {
			c.log.WarnContext(ctx, "skipping definition without word or text", slog.Int("index", i))
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointDefinitions, Err: ErrNoResults}
	}

	c.log.DebugContext(ctx, "wordnik definitions",
		slog.String("word", p.Word),
		slog.Int("received", len(elems)),
		slog.Int("usable", len(records)),
	)
	return records, nil
}

// Pronunciation fetches the first text pronunciation of a word from the
// default dictionary, in the given format.
func (c *Client) Pronunciation(ctx context.Context, word, format string, useCanonical bool) (*model.Pronunciation, error) {
	q := url.Values{
		"useCanonical":     {strconv.FormatBool(useCanonical)},
		"sourceDictionary": {model.DefaultDictionary},
		"typeFormat":       {format},
		"limit":            {"1"},
	}

	var elems []dto.JSONPronunciation
	if err := c.fetch(ctx, EndpointPronunciations, word, q, &elems); err != nil {
		return nil, err
	}
	if len(elems) == 0 || elems[0].Raw == "" {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointPronunciations, Err: ErrNoResults}
	}

	pron := elems[0].ToPronunciation()
	if pron.Format == "" {
		pron.Format = format
	}
	return pron, nil
}

// Audio finds the first audio pronunciation of a word and downloads it.
func (c *Client) Audio(ctx context.Context, word string, useCanonical bool) (*model.AudioClip, error) {
	q := url.Values{
		"useCanonical": {strconv.FormatBool(useCanonical)},
		"limit":        {"50"},
	}

	var elems []dto.JSONAudio
	if err := c.fetch(ctx, EndpointAudio, word, q, &elems); err != nil {
		return nil, err
	}
	if len(elems) == 0 || elems[0].FileURL == "" {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointAudio, Err: ErrNoResults}
	}

	clip := elems[0].ToAudioClip()
	data, err := c.transport.DownloadBytes(ctx, clip.URL)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Endpoint: EndpointAudioFile, Err: err}
	}
	if len(data) == 0 {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointAudioFile, Err: ErrNoResults}
	}
	clip.Data = data

	c.log.DebugContext(ctx, "wordnik audio",
		slog.String("word", word),
		slog.String("url", clip.URL),
		slog.Int("bytes", len(data)),
	)
	return clip, nil
}

// Examples fetches usage examples.
func (c *Client) Examples(ctx context.Context, word string, useCanonical bool, limit uint8) ([]model.Example, error) {
	q := url.Values{
		"useCanonical":      {strconv.FormatBool(useCanonical)},
		"includeDuplicates": {"false"},
		"limit":             {strconv.Itoa(int(limit))},
	}

	var search dto.JSONExampleSearch
	if err := c.fetch(ctx, EndpointExamples, word, q, &search); err != nil {
		return nil, err
	}
	examples := search.ToExamples()
	if len(examples) == 0 {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointExamples, Err: ErrNoResults}
	}
	return examples, nil
}

// Hyphenation fetches the syllable breakdown.
func (c *Client) Hyphenation(ctx context.Context, word string, useCanonical bool, limit uint8) ([]model.Syllable, error) {
	q := url.Values{
		"useCanonical": {strconv.FormatBool(useCanonical)},
		"limit":        {strconv.Itoa(int(limit))},
	}

	var elems []dto.JSONSyllable
	if err := c.fetch(ctx, EndpointHyphenation, word, q, &elems); err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointHyphenation, Err: ErrNoResults}
	}

	syllables := make([]model.Syllable, 0, len(elems))
	for _, s := range elems {
		syllables = append(syllables, s.ToSyllable())
	}
	return syllables, nil
}

// RelatedWords fetches synonyms and antonyms.
func (c *Client) RelatedWords(ctx context.Context, word string, useCanonical bool) ([]model.RelatedWords, error) {
	q := url.Values{
		"useCanonical":             {strconv.FormatBool(useCanonical)},
		"relationshipTypes":        {"synonym,antonym"},
		"limitPerRelationshipType": {"10"},
	}

	var elems []dto.JSONRelated
	if err := c.fetch(ctx, EndpointRelatedWords, word, q, &elems); err != nil {
		return nil, err
	}

	related := make([]model.RelatedWords, 0, len(elems))
	for _, r := range elems {
		if len(r.Words) == 0 {
			continue
		}
		related = append(related, r.ToRelatedWords())
	}
	if len(related) == 0 {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointRelatedWords, Err: ErrNoResults}
	}
	return related, nil
}

// Frequency fetches yearly usage counts. A nil start or end leaves that
// bound to the server default.
func (c *Client) Frequency(ctx context.Context, word string, useCanonical bool, start, end *uint16) (*model.Frequency, error) {
	q := url.Values{
		"useCanonical": {strconv.FormatBool(useCanonical)},
	}
	if start != nil {
		q.Set("startYear", strconv.Itoa(int(*start)))
	}
	if end != nil {
		q.Set("endYear", strconv.Itoa(int(*end)))
	}

	var summary dto.JSONFrequencySummary
	if err := c.fetch(ctx, EndpointFrequency, word, q, &summary); err != nil {
		return nil, err
	}
	return summary.ToFrequency(), nil
}

// Etymologies fetches the raw etymology strings. They may contain markup.
func (c *Client) Etymologies(ctx context.Context, word string, useCanonical bool) ([]string, error) {
	q := url.Values{
		"useCanonical": {strconv.FormatBool(useCanonical)},
	}

	var etymologies []string
	if err := c.fetch(ctx, EndpointEtymologies, word, q, &etymologies); err != nil {
		return nil, err
	}
	if len(etymologies) == 0 {
		return nil, &FetchError{Kind: KindEmpty, Endpoint: EndpointEtymologies, Err: ErrNoResults}
	}
	return etymologies, nil
}

// fetch calls {base}/{word}/{endpoint} with the api key added to q and
// decodes the JSON body into out.
func (c *Client) fetch(ctx context.Context, endpoint, word string, q url.Values, out any) error {
	q.Set("api_key", c.apiKey)
	rawURL := c.baseURL + "/" + url.PathEscape(word) + "/" + endpoint

	c.log.DebugContext(ctx, "wordnik request", slog.String("endpoint", endpoint), slog.String("word", word))

	body, err := c.transport.Get(ctx, rawURL, q)
	if err != nil {
		var se *dhttp.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return &FetchError{Kind: KindEmpty, Endpoint: endpoint, Err: err}
		}
		return &FetchError{Kind: KindTransport, Endpoint: endpoint, Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{Kind: KindDecode, Endpoint: endpoint, Err: err}
	}
	return nil
}

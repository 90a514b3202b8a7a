package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/handiism/define/internal/cli"
	"github.com/handiism/define/internal/model"
	"github.com/handiism/define/internal/wordnik"
)

// ErrNoDefinitions is returned when the definitions call succeeds but yields
// nothing to show.
var ErrNoDefinitions = errors.New("no definitions found")

// Dictionary is the remote service a lookup talks to.
// *wordnik.Client implements it.
type Dictionary interface {
	Definitions(ctx context.Context, p wordnik.DefinitionsParams) ([]model.LookupRecord, error)
	Pronunciation(ctx context.Context, word, format string, useCanonical bool) (*model.Pronunciation, error)
	Audio(ctx context.Context, word string, useCanonical bool) (*model.AudioClip, error)
	Examples(ctx context.Context, word string, useCanonical bool, limit uint8) ([]model.Example, error)
	Hyphenation(ctx context.Context, word string, useCanonical bool, limit uint8) ([]model.Syllable, error)
	RelatedWords(ctx context.Context, word string, useCanonical bool) ([]model.RelatedWords, error)
	Frequency(ctx context.Context, word string, useCanonical bool, start, end *uint16) (*model.Frequency, error)
	Etymologies(ctx context.Context, word string, useCanonical bool) ([]string, error)
}

// Result is everything one lookup produced.
type Result struct {
	Word       string
	Groups     *model.Groups
	Enrichment *model.Enrichment
	// Clip is nil when audio was not requested or none could be fetched.
	Clip *model.AudioClip
}

// Service runs the calls for a Request in a fixed order.
type Service struct {
	dict Dictionary
	log  *slog.Logger
}

// NewService creates a Service.
func NewService(dict Dictionary, logger *slog.Logger) *Service {
	return &Service{
		dict: dict,
		log:  logger.With("component", "lookup"),
	}
}

// Lookup fetches definitions, then the pronunciation, then any requested
// enrichments, then audio.
//
// Only the definitions call can fail the lookup. Every later call that
// fails leaves its value absent and is logged at debug level.
func (s *Service) Lookup(ctx context.Context, req *cli.Request) (*Result, error) {
	params := wordnik.DefinitionsParams{
		Word:           req.Word(),
		Dictionaries:   req.Dictionaries(),
		Limit:          req.Limit(),
		IncludeRelated: req.IncludeRelated(),
		UseCanonical:   req.UseCanonical(),
	}
	if pos, ok := req.PartOfSpeech(); ok {
		params.PartOfSpeech = pos
	}

	records, err := s.dict.Definitions(ctx, params)
	if err != nil {
		if wordnik.IsKind(err, wordnik.KindEmpty) {
			return nil, fmt.Errorf("%w for %q", ErrNoDefinitions, req.Word())
		}
		return nil, fmt.Errorf("fetch definitions: %w", err)
	}

	pron, err := s.dict.Pronunciation(ctx, req.Word(), req.PronunciationFormat(), req.UseCanonical())
	if err != nil {
		s.absent(ctx, "pronunciation", err)
		pron = nil
	}

	groups := Aggregate(records, pron)
	s.log.DebugContext(ctx, "grouped definitions",
		slog.String("word", req.Word()),
		slog.Any("headwords", groups.Headwords()),
	)

	result := &Result{
		Word:       req.Word(),
		Groups:     groups,
		Enrichment: s.enrich(ctx, req),
	}

	if req.Audio() {
		clip, err := s.dict.Audio(ctx, req.Word(), req.UseCanonical())
		if err != nil {
			s.absent(ctx, "audio", err)
		} else {
			result.Clip = clip
		}
	}

	return result, nil
}

// enrich runs the optional calls selected by the request's toggles.
func (s *Service) enrich(ctx context.Context, req *cli.Request) *model.Enrichment {
	e := &model.Enrichment{}
	word, canonical := req.Word(), req.UseCanonical()

	if req.Examples() {
		examples, err := s.dict.Examples(ctx, word, canonical, req.Limit())
		if err != nil {
			s.absent(ctx, "examples", err)
		}
		e.Examples = examples
	}

	if req.Hyphenation() {
		syllables, err := s.dict.Hyphenation(ctx, word, canonical, req.Limit())
		if err != nil {
			s.absent(ctx, "hyphenation", err)
		}
		e.Syllables = syllables
	}

	if req.Thesaurus() {
		related, err := s.dict.RelatedWords(ctx, word, canonical)
		if err != nil {
			s.absent(ctx, "thesaurus", err)
		}
		e.Related = related
	}

	if req.Frequency() {
		var start, end *uint16
		if y, ok := req.StartYear(); ok {
			start = &y
			if y, ok := req.EndYear(); ok {
				end = &y
			}
		}
		freq, err := s.dict.Frequency(ctx, word, canonical, start, end)
		if err != nil {
			s.absent(ctx, "frequency", err)
		}
		e.Frequency = freq
	}

	if req.Etymology() {
		etymologies, err := s.dict.Etymologies(ctx, word, canonical)
		if err != nil {
			s.absent(ctx, "etymology", err)
		}
		e.Etymologies = etymologies
	}

	return e
}

func (s *Service) absent(ctx context.Context, what string, err error) {
	s.log.DebugContext(ctx, what+" unavailable", slog.String("error", err.Error()))
}

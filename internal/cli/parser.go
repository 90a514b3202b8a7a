package cli

import (
	"fmt"
	"strings"

	"github.com/handiism/define/internal/model"
)

// stateKind is the parser state: either waiting for an option, or
// collecting values for the option most recently seen.
type stateKind int

const (
	stateIdle stateKind = iota
	stateCollecting
)

// tokenClass splits tokens into options ("-x", "--limit") and values.
type tokenClass int

const (
	classValue tokenClass = iota
	classOption
)

// handler performs one transition. It reports whether the token was
// consumed; a handler that returns false must leave the parser idle so the
// same token is read again as an option.
type handler func(p *parser, tok string) (consumed bool, err error)

// transitions is the parser's state table, indexed by state and token class.
var transitions = [2][2]handler{
	stateIdle: {
		classOption: (*parser).openOption,
		classValue:  (*parser).rejectValue,
	},
	stateCollecting: {
		classOption: (*parser).closeOrReject,
		classValue:  (*parser).collectValue,
	},
}

type parser struct {
	req *Request

	state stateKind
	// pending is the option being collected; nil while idle or when the
	// pending name did not match any known option.
	pending *option
	// pendingName is the normalized name as typed.
	pendingName string
	// collected counts the values consumed for pending so far.
	collected int
}

// Parse turns command-line tokens (without the program name) into a Request.
//
// The first token is the word to look up and must not look like an option.
// Every following token is either an option or a value for the option
// before it. Parse returns ErrHelpRequested when a help option is seen, and
// a *UsageError for malformed input.
//
// Example:
//
//	req, err := cli.Parse([]string{"cat", "-d", "ahd-5", "century", "-l", "3"})
//	// req.Dictionaries() == ["ahd-5", "century"], req.Limit() == 3
func Parse(tokens []string) (*Request, error) {
	if len(tokens) == 0 {
		return nil, usageErrorf("wrong number of arguments: expected at least 1, got 0")
	}
	if looksLikeOption(tokens[0]) {
		return nil, usageErrorf("the first argument must be a word")
	}

	p := &parser{req: newRequest(tokens[0])}

	for i := 1; i < len(tokens); {
		tok := tokens[i]
		consumed, err := transitions[p.state][classify(tok)](p, tok)
		if err != nil {
			return nil, err
		}
		if consumed {
			i++
		}
	}

	p.finish()
	return p.req, nil
}

func looksLikeOption(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

func classify(tok string) tokenClass {
	if looksLikeOption(tok) {
		return classOption
	}
	return classValue
}

func normalize(tok string) string {
	return strings.ToLower(strings.TrimLeft(tok, "-"))
}

func (p *parser) openOption(tok string) (bool, error) {
	name := normalize(tok)
	opt := lookupOption(name)

	switch {
	case opt == nil:
		// Accept tentatively; it fails once a value shows up for it.
		p.collect(nil, name)
	case opt.usage:
		return false, ErrHelpRequested
	default:
		if opt.set != nil {
			opt.set(p.req)
		}
		if opt.collect != nil {
			p.collect(opt, name)
		}
	}
	return true, nil
}

func (p *parser) rejectValue(tok string) (bool, error) {
	return false, usageErrorf("unable to parse arguments; unexpected value %q", tok)
}

func (p *parser) closeOrReject(tok string) (bool, error) {
	if p.pending != nil && p.pending.variadic {
		p.idle()
		return false, nil
	}
	return false, usageErrorf("unable to parse arguments; option -%s expects a value before %q", p.pendingName, tok)
}

func (p *parser) collectValue(tok string) (bool, error) {
	if p.pending == nil {
		return false, usageErrorf("unable to parse arguments; unknown operator '%s'", p.pendingName)
	}

	done, err := p.pending.collect(p.req, p.collected, tok)
	if err != nil {
		return false, err
	}
	p.collected++
	if done {
		p.idle()
	}
	return true, nil
}

func (p *parser) collect(opt *option, name string) {
	p.state = stateCollecting
	p.pending = opt
	p.pendingName = name
	p.collected = 0
}

func (p *parser) idle() {
	p.state = stateIdle
	p.pending = nil
	p.pendingName = ""
	p.collected = 0
}

// finish resolves whatever is still pending at the end of the tokens and
// fills in defaults.
func (p *parser) finish() {
	if p.state == stateCollecting && p.pending == nil {
		p.req.warnings = append(p.req.warnings,
			fmt.Sprintf("ignoring unknown option -%s", p.pendingName))
	}
	p.idle()

	if len(p.req.dictionaries) == 0 {
		p.req.dictionaries = []string{model.DefaultDictionary}
	}
}

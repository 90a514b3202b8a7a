package present

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	emOpen  = "<em>"
	emClose = "</em>"
)

// Emphasis is a gloss with its markers removed and the byte range of Text
// that should be emphasized.
type Emphasis struct {
	Text       string
	Start, End int
}

// ResolveEmphasis strips <em> and </em> markers from gloss.
//
// The emphasized range runs from the first <em> to the last </em>, measured
// in the stripped text. Without an <em> the gloss is returned unchanged and
// the range is empty. Without a </em> after the first <em> the range runs to
// the end of the text. Disjoint spans collapse into one.
func ResolveEmphasis(gloss string) Emphasis {
	first := strings.Index(gloss, emOpen)
	if first < 0 {
		return Emphasis{Text: gloss}
	}
	last := strings.LastIndex(gloss, emClose)
	if last < first {
		last = -1
	}

	var b strings.Builder
	b.Grow(len(gloss))
	start, end := 0, -1
	for i := 0; i < len(gloss); {
		switch {
		case strings.HasPrefix(gloss[i:], emOpen):
			if i == first {
				start = b.Len()
			}
			i += len(emOpen)
		case strings.HasPrefix(gloss[i:], emClose):
			if i == last {
				end = b.Len()
			}
			i += len(emClose)
		default:
			b.WriteByte(gloss[i])
			i++
		}
	}

	text := b.String()
	if end < 0 {
		end = len(text)
	}
	return Emphasis{Text: text, Start: start, End: end}
}

// Render returns Text with the emphasized range styled.
//
// The range is styled line by line with tab conversion off, so its tabs
// and newlines come through unchanged.
func (e Emphasis) Render(style lipgloss.Style) string {
	if e.Start >= e.End {
		return e.Text
	}
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(e.Text[e.Start:e.End], "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return e.Text[:e.Start] + strings.Join(lines, "\n") + e.Text[e.End:]
}

package present

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/handiism/define/internal/lookup"
	"github.com/handiism/define/internal/model"
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

type styles struct {
	headword      lipgloss.Style
	pronunciation lipgloss.Style
	attribution   lipgloss.Style
	emphasis      lipgloss.Style
	section       lipgloss.Style
	stress        lipgloss.Style
	dim           lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		headword:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		pronunciation: r.NewStyle().Foreground(lipgloss.Color("1")),
		attribution:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("3")),
		emphasis:      r.NewStyle().Italic(true).Bold(true),
		section:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		stress:        r.NewStyle().Bold(true),
		dim:           r.NewStyle().Faint(true),
	}
}

// Presenter writes lookup results as styled text.
type Presenter struct {
	w      io.Writer
	styles styles
}

// New creates a Presenter writing to w. Styles are rendered with r, which
// decides the color profile; pass nil to detect it from w.
func New(w io.Writer, r *lipgloss.Renderer) *Presenter {
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return &Presenter{w: w, styles: newStyles(r)}
}

// Render writes every group of res, then any enrichment sections and the
// audio clip line.
//
// Each group is the headword with the pronunciation in parentheses, a blank
// line, then one block per record:
//
//	noun - from The American Heritage® Dictionary
//		* A small carnivorous mammal.
func (p *Presenter) Render(res *lookup.Result) error {
	var b strings.Builder

	for _, g := range res.Groups.All() {
		p.writeGroup(&b, g)
	}
	if res.Enrichment != nil {
		p.writeEnrichment(&b, res.Enrichment)
	}
	if res.Clip != nil {
		fmt.Fprintf(&b, "♪ %s\n", p.styles.dim.Render(res.Clip.Label()))
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Presenter) writeGroup(b *strings.Builder, g model.WordGroup) {
	b.WriteString(p.styles.headword.Render(g.Headword))
	if g.Pronunciation != nil {
		fmt.Fprintf(b, " (%s)", p.styles.pronunciation.Render(g.Pronunciation.Raw))
	}
	b.WriteString("\n\n")

	for _, rec := range g.Records {
		fmt.Fprintf(b, "%s - %s\n\t* %s\n\n",
			rec.PartOfSpeech,
			p.styles.attribution.Render(rec.AttributionText),
			ResolveEmphasis(rec.Gloss).Render(p.styles.emphasis),
		)
	}
}

func (p *Presenter) writeEnrichment(b *strings.Builder, e *model.Enrichment) {
	if len(e.Examples) > 0 {
		b.WriteString(p.styles.section.Render("Examples") + "\n")
		for _, ex := range e.Examples {
			fmt.Fprintf(b, "\t* %s", ResolveEmphasis(ex.Text).Render(p.styles.emphasis))
			if source := exampleSource(ex); source != "" {
				b.WriteString(" " + p.styles.dim.Render(source))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(e.Syllables) > 0 {
		parts := make([]string, len(e.Syllables))
		for i, s := range e.Syllables {
			parts[i] = s.Text
			if s.Type == "stress" {
				parts[i] = p.styles.stress.Render(s.Text)
			}
		}
		fmt.Fprintf(b, "%s\n\t%s\n\n", p.styles.section.Render("Syllables"), strings.Join(parts, "·"))
	}

	for _, rel := range e.Related {
		fmt.Fprintf(b, "%s\n\t%s\n\n", p.styles.section.Render(relationTitle(rel.Relationship)), strings.Join(rel.Words, ", "))
	}

	if e.Frequency != nil {
		fmt.Fprintf(b, "%s\n\tTotal: %d\n", p.styles.section.Render("Frequency"), e.Frequency.TotalCount)
		if len(e.Frequency.Years) > 0 {
			b.WriteString(frequencyTable(e.Frequency.Years) + "\n")
		}
		b.WriteString("\n")
	}

	if len(e.Etymologies) > 0 {
		b.WriteString(p.styles.section.Render("Etymology") + "\n")
		for _, ety := range e.Etymologies {
			fmt.Fprintf(b, "\t* %s\n", StripMarkup(ety))
		}
		b.WriteString("\n")
	}
}

// StripMarkup removes XML-like tags and collapses whitespace.
func StripMarkup(s string) string {
	return strings.Join(strings.Fields(markupPattern.ReplaceAllString(s, "")), " ")
}

func exampleSource(ex model.Example) string {
	switch {
	case ex.Title != "" && ex.Year > 0:
		return fmt.Sprintf("(%s, %d)", ex.Title, ex.Year)
	case ex.Title != "":
		return "(" + ex.Title + ")"
	case ex.Year > 0:
		return "(" + strconv.Itoa(ex.Year) + ")"
	default:
		return ""
	}
}

func relationTitle(rel string) string {
	switch rel {
	case "synonym":
		return "Synonyms"
	case "antonym":
		return "Antonyms"
	case "":
		return "Related"
	default:
		return strings.ToUpper(rel[:1]) + rel[1:]
	}
}

func frequencyTable(years []model.YearCount) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Options = table.OptionsNoBordersAndSeparators
	t.Style().Box.PaddingLeft = "\t"
	t.AppendHeader(table.Row{"Year", "Count"})
	for _, y := range years {
		t.AppendRow(table.Row{y.Year, y.Count})
	}
	return t.Render()
}

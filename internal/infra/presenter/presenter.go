// Package presenter renders lookup summaries as chat or terminal reports.
package presenter

import (
	"fmt"
	"html"
	"strings"

	"exam_results_bot/internal/domain/result"
)

// Format selects the markup of a rendered report.
type Format int

const (
	FormatPlain Format = iota
	FormatHTML
)

const defaultMaxDiagnostics = 3

// Options controls one rendering.
type Options struct {
	Format Format
	// Subjects fixes which subjects are listed and in what order; nil lists every
	// subject of the summary.
	Subjects       []string
	MaxDiagnostics int
}

// Presenter renders summaries with one message set.
type Presenter struct {
	msgs Messages
}

func New(msgs Messages) *Presenter {
	return &Presenter{msgs: msgs}
}

func (p *Presenter) Messages() Messages {
	return p.msgs
}

// Render produces the report for s. When no student was found only the not-found text
// and the leading diagnostics are rendered.
func (p *Presenter) Render(s *result.LookupSummary, opts Options) string {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = defaultMaxDiagnostics
	}
	esc := func(v string) string { return v }
	if opts.Format == FormatHTML {
		esc = html.EscapeString
	}

	var b strings.Builder
	if !s.HasStudent() {
		b.WriteString(esc(p.msgs.NotFound))
		p.writeDiagnostics(&b, s.Diagnostics, opts.MaxDiagnostics, esc)
		return b.String()
	}

	b.WriteString(p.bold(p.msgs.Header, opts.Format, esc))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(esc(p.msgs.StudentName), p.bold(s.StudentName, opts.Format, esc)))
	b.WriteString("\n\n")
	b.WriteString(esc(p.msgs.ScoresTitle))
	b.WriteString("\n")

	subjects := opts.Subjects
	if subjects == nil {
		for _, r := range s.Subjects {
			subjects = append(subjects, r.SubjectID)
		}
	}
	for _, id := range subjects {
		label := p.msgs.MissingSubject
		if r, ok := s.Result(id); ok {
			label = p.Label(r)
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", esc(id), esc(label)))
	}

	if !s.HasResults() {
		b.WriteString("\n")
		b.WriteString(esc(p.msgs.NoResults))
		p.writeDiagnostics(&b, s.Diagnostics, opts.MaxDiagnostics, esc)
		return b.String()
	}

	aggregate := fmt.Sprintf(esc(p.msgs.Total), FormatPercent(s.TotalPercentage), s.SubjectsCounted) +
		"\n" + fmt.Sprintf(esc(p.msgs.Average), FormatPercent(*s.Average))
	b.WriteString("\n")
	if opts.Format == FormatHTML {
		b.WriteString("<pre>" + aggregate + "</pre>\n")
	} else {
		b.WriteString(aggregate + "\n")
	}

	if s.Tier != nil {
		if msg, ok := p.msgs.Tier[*s.Tier]; ok {
			b.WriteString("\n")
			b.WriteString(p.bold(msg, opts.Format, esc))
		}
	}
	return b.String()
}

// Label is the per-subject text: a percentage, or the outcome's label.
func (p *Presenter) Label(r result.SubjectResult) string {
	if r.Kind == result.OutcomePercentage {
		return FormatPercent(r.Percentage)
	}
	if l, ok := p.msgs.Outcome[r.Kind]; ok {
		return l
	}
	return string(r.Kind)
}

// FormatPercent prints a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func (p *Presenter) bold(text string, f Format, esc func(string) string) string {
	if f == FormatHTML {
		return "<b>" + esc(text) + "</b>"
	}
	return text
}

func (p *Presenter) writeDiagnostics(b *strings.Builder, diags []string, max int, esc func(string) string) {
	if len(diags) == 0 {
		return
	}
	if len(diags) > max {
		diags = diags[:max]
	}
	b.WriteString("\n\n")
	b.WriteString(esc(p.msgs.MoreInfo))
	for _, d := range diags {
		b.WriteString("\n• ")
		b.WriteString(esc(d))
	}
}

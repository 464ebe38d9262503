package widget

import "strings"

// Fixed glyph metrics used until a text stack is attached. Labels exist
// here so that composites and demos have a baseline-reporting leaf
// widget; real font measurement is the host framework's job.
const (
	labelCharWidth = 7
	labelHeight    = 16
	labelAscent    = 12
	labelPadding   = 2
)

// Label is a single-line text leaf widget. It reports baseline-aware
// vertical sizing, which is what makes grid rows with BaselinePosition
// policies line text up across columns.
type Label struct {
	Base

	text         string
	useUnderline bool
}

// NewLabel creates a label showing the given text.
func NewLabel(text string) *Label {
	return &Label{Base: NewBase(), text: text}
}

func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }

// SetUseUnderline interprets a single underscore in the text as a
// mnemonic marker rather than a literal character.
func (l *Label) SetUseUnderline(use bool) { l.useUnderline = use }
func (l *Label) UseUnderline() bool       { return l.useUnderline }

// displayText is the text as shown, with mnemonic underscores elided.
func (l *Label) displayText() string {
	if !l.useUnderline {
		return l.text
	}
	return elideUnderscores(l.text)
}

// elideUnderscores removes single mnemonic underscores; a doubled
// underscore stands for a literal one.
func elideUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			if i+1 < len(s) && s[i+1] == '_' {
				b.WriteByte('_')
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func (l *Label) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	if orient == Horizontal {
		w := len([]rune(l.displayText()))*labelCharWidth + 2*labelPadding
		return w, w, NoBaseline, NoBaseline
	}
	h := labelHeight + 2*labelPadding
	baseline := labelPadding + labelAscent
	return h, h, baseline, baseline
}

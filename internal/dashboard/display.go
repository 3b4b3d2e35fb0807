package dashboard

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"impactio/internal/models"
)

// Placeholder is shown in the table for absent optional fields.
const Placeholder = "-"

// Tone is the colour family of a badge.
type Tone string

const (
	ToneBlue    Tone = "blue"
	ToneYellow  Tone = "yellow"
	ToneGreen   Tone = "green"
	TonePurple  Tone = "purple"
	ToneRed     Tone = "red"
	ToneNeutral Tone = "gray"
)

// Class is the badge utility class set for a tone.
func (t Tone) Class() string {
	return "bg-" + string(t) + "-500/20 text-" + string(t) + "-400 border-" + string(t) + "-500/30"
}

func StatusTone(s models.Status) Tone {
	switch s {
	case models.StatusNew:
		return ToneBlue
	case models.StatusContacted:
		return ToneYellow
	case models.StatusQualified:
		return ToneGreen
	case models.StatusProposal:
		return TonePurple
	case models.StatusClosed:
		return ToneNeutral
	default:
		return ToneNeutral
	}
}

func PriorityTone(p models.Priority) Tone {
	switch p {
	case models.PriorityHigh:
		return ToneRed
	case models.PriorityMedium:
		return ToneYellow
	case models.PriorityLow:
		return ToneGreen
	default:
		return ToneNeutral
	}
}

// Label upper-cases the first letter of a raw categorical value for display. Stored values are never changed.
func Label(raw string) string {
	if raw == "" {
		return raw
	}
	// только первая буква; Caser хранит состояние, поэтому новый на каждый вызов
	_, size := utf8.DecodeRuneInString(raw)
	return cases.Upper(language.Und).String(raw[:size]) + raw[size:]
}

func statusBadge(s models.Status) models.Badge {
	t := StatusTone(s)
	return models.Badge{Value: string(s), Label: Label(string(s)), Tone: string(t), Class: t.Class()}
}

func priorityBadge(p models.Priority) models.Badge {
	t := PriorityTone(p)
	return models.Badge{Value: string(p), Label: Label(string(p)), Tone: string(t), Class: t.Class()}
}

// DateFormat renders lead creation dates in a fixed short layout and zone.
type DateFormat struct {
	Layout   string
	Location *time.Location
}

// DefaultDateFormat mirrors the en-US short date, e.g. 10/19/2026.
var DefaultDateFormat = DateFormat{Layout: "1/2/2006", Location: time.UTC}

func (f DateFormat) Format(t time.Time) string {
	layout := strings.TrimSpace(f.Layout)
	if layout == "" {
		layout = DefaultDateFormat.Layout
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(layout)
}

package indicators

import "strings"

// Ladder scores a closed set of labels. Blank labels (and the listed
// placeholder labels) score the ladder's floor; any other label outside
// the set is an error.
type Ladder struct {
	family Family
	scores map[string]float64
	blank  map[string]bool
	floor  float64
}

// NewLadder builds a ladder. Labels are matched case-sensitively after
// trimming.
func NewLadder(family Family, scores map[string]float64, floor float64, placeholders ...string) *Ladder {
	l := &Ladder{
		family: family,
		scores: make(map[string]float64, len(scores)),
		blank:  map[string]bool{"": true},
		floor:  floor,
	}
	for k, v := range scores {
		l.scores[k] = v
	}
	for _, p := range placeholders {
		l.blank[p] = true
	}
	return l
}

// NewCBDCLadder scores central bank digital currency rollout stages.
func NewCBDCLadder() *Ladder {
	return NewLadder(CBDC, map[string]float64{
		"Cancelled":        0,
		"Research":         20,
		"Proof of concept": 50,
		"Pilot":            80,
		"Launched":         100,
	}, 0, "None")
}

// NewLegalStatus scores the legal standing of cryptocurrency. Unknown
// status counts as permissive.
func NewLegalStatus() *Ladder {
	return NewLadder(Cryptocurrency, map[string]float64{
		"Permissive":  0,
		"Contentious": 30,
		"Restricted":  70,
		"Hostile":     100,
	}, 0, "Unknown")
}

func (l *Ladder) Family() Family {
	return l.family
}

// Score returns the score for a label.
func (l *Ladder) Score(raw string) (float64, error) {
	label := strings.TrimSpace(raw)
	if s, ok := l.scores[label]; ok {
		return s, nil
	}
	if l.blank[label] {
		return l.floor, nil
	}
	return 0, &UnknownCategoryError{Family: l.family, Label: raw}
}

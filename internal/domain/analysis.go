package domain

import (
	"fmt"
	"strconv"
)

const (
	MinPosition = 1
	MaxPosition = DeckSize

	FactorMin     = 50
	FactorMax     = 150
	SampleSizeMin = 100_000
	SampleSizeMax = 200_000

	DistributionMean   = 10.0
	DistributionStdDev = 5.0
	DistributionFloor  = 1.0
	DistributionCeil   = 25.0
	HighlightValue     = 50.0
)

// CutNumber is the forward distance, modulo 52, from a requested position to
// the card's position in the stack.
type CutNumber int

// CutNumberOf computes the cut number for a card at current requested at
// position. Both must be in [1,52].
func CutNumberOf(current, position int) CutNumber {
	switch {
	case current == position:
		return 0
	case current > position:
		return CutNumber(current - position)
	default:
		return CutNumber(DeckSize - (position - current))
	}
}

// String renders zero as "00".
func (c CutNumber) String() string {
	if c == 0 {
		return "00"
	}
	return strconv.Itoa(int(c))
}

// Analysis is the synthesized result shown on the results page. It is never
// stored: every render draws fresh numbers.
type Analysis struct {
	Card                Card
	Position            int
	CurrentPosition     int
	CutNumber           CutNumber
	CardFactor          int
	PositionFactor      int
	CombinedProbability int
	SampleSize          int
	// Distribution is decorative. Index i holds the bar for position i+1.
	Distribution [DeckSize]float64
}

// ValidPosition reports whether pos is a 1-based stack position.
func ValidPosition(pos int) bool {
	return pos >= MinPosition && pos <= MaxPosition
}

// Analyze looks card up in stack and synthesizes the combined probability,
// sample size and distribution for position.
func Analyze(stack Stack, card Card, position int, rng RNG) (Analysis, error) {
	if !ValidPosition(position) {
		return Analysis{}, fmt.Errorf("%w: got %d", ErrInvalidPosition, position)
	}
	current, err := stack.PositionOf(card)
	if err != nil {
		return Analysis{}, err
	}

	cut := CutNumberOf(current, position)
	cardFactor := uniform(rng, FactorMin, FactorMax)
	positionFactor := uniform(rng, FactorMin, FactorMax)

	a := Analysis{
		Card:                card,
		Position:            position,
		CurrentPosition:     current,
		CutNumber:           cut,
		CardFactor:          cardFactor,
		PositionFactor:      positionFactor,
		CombinedProbability: cardFactor*positionFactor/100*100 + int(cut),
		SampleSize:          uniform(rng, SampleSizeMin, SampleSizeMax),
	}

	for i := range a.Distribution {
		v := DistributionMean + DistributionStdDev*rng.NormFloat64()
		a.Distribution[i] = min(max(v, DistributionFloor), DistributionCeil)
	}
	a.Distribution[position-1] = HighlightValue

	return a, nil
}

// uniform draws an int from [lo, hi] inclusive.
func uniform(rng RNG, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

package http

import (
	"github.com/randomtoy/cardstats-go/internal/app"
	"github.com/randomtoy/cardstats-go/internal/domain"
)

func (h *Handler) toResponse(v app.PageView, requestID string) SessionResponse {
	resp := SessionResponse{
		SessionID: v.SessionID,
		Stack:     StackResponse{ID: v.Stack.ID, Name: v.Stack.Name},
		Page:      string(v.Page),
		Ranks:     toOptions(v.Ranks),
		Suits:     toOptions(v.Suits),
		Entry:     v.Entry,
		Position:  v.Position,
		Controls: ControlsResponse{
			PickCard: v.Controls.PickCard,
			Digits:   v.Controls.Digits,
			Confirm:  v.Controls.Confirm,
			Restart:  v.Controls.Restart,
		},
		Notice: v.Notice,
		Meta:   MetaResp{RequestID: requestID, UpdatedAt: v.UpdatedAt},
	}
	if !v.PendingCard.IsZero() {
		pending := toCard(v.PendingCard)
		resp.PendingCard = &pending
	}
	if v.Card.Valid() {
		card := toCard(v.Card)
		resp.Card = &card
	}
	if v.Analysis != nil {
		results := h.toResults(*v.Analysis)
		resp.Results = &results
	}
	return resp
}

func (h *Handler) toResults(a domain.Analysis) ResultsResponse {
	bars := make([]BarResponse, len(a.Distribution))
	for i, val := range a.Distribution {
		bars[i] = BarResponse{
			Position:  i + 1,
			Value:     val,
			Highlight: i+1 == a.Position,
			Label:     h.printer.Sprintf("Position %d, Probability: %.2f%%", i+1, val),
		}
	}
	return ResultsResponse{
		Card:                toCard(a.Card),
		Position:            a.Position,
		CutNumber:           a.CutNumber.String(),
		CombinedProbability: a.CombinedProbability,
		SampleSize:          a.SampleSize,
		Headline: h.printer.Sprintf("Estimated probability of %s appearing at position #%d is 1 in %d.",
			a.Card.String(), a.Position, a.CombinedProbability),
		SampleSizeText: h.printer.Sprintf("Based on %d simulated shuffles.", a.SampleSize),
		Chart: ChartResponse{
			Title: "Probability Distribution",
			XAxis: "Position in Deck",
			YAxis: "Probability (%)",
			Bars:  bars,
		},
	}
}

func toCard(c domain.Card) CardResponse {
	return CardResponse{
		Code: c.Code(),
		Name: c.String(),
		Rank: c.Rank.String(),
		Suit: c.Suit.String(),
	}
}

func toOptions(opts []app.Option) []OptionResponse {
	if len(opts) == 0 {
		return nil
	}
	out := make([]OptionResponse, len(opts))
	for i, o := range opts {
		out[i] = OptionResponse{Value: o.Value, Label: o.Label, Selected: o.Selected}
	}
	return out
}

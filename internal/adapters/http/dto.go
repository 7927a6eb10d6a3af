package http

import "time"

// SessionResponse is the JSON page description returned by every session
// endpoint and pushed over the stream.
type SessionResponse struct {
	SessionID   string           `json:"session_id"`
	Stack       StackResponse    `json:"stack"`
	Page        string           `json:"page"`
	Ranks       []OptionResponse `json:"ranks,omitempty"`
	Suits       []OptionResponse `json:"suits,omitempty"`
	PendingCard *CardResponse    `json:"pending_card,omitempty"`
	Card        *CardResponse    `json:"card,omitempty"`
	Entry       string           `json:"entry"`
	Position    int              `json:"position,omitempty"`
	Controls    ControlsResponse `json:"controls"`
	Notice      string           `json:"notice,omitempty"`
	Results     *ResultsResponse `json:"results,omitempty"`
	Meta        MetaResp         `json:"meta"`
}

type StackResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StacksResponse struct {
	Stacks []StackResponse `json:"stacks"`
}

type OptionResponse struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type CardResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Rank string `json:"rank,omitempty"`
	Suit string `json:"suit,omitempty"`
}

type ControlsResponse struct {
	PickCard bool `json:"pick_card"`
	Digits   bool `json:"digits"`
	Confirm  bool `json:"confirm"`
	Restart  bool `json:"restart"`
}

type ResultsResponse struct {
	Card                CardResponse  `json:"card"`
	Position            int           `json:"position"`
	CutNumber           string        `json:"cut_number"`
	CombinedProbability int           `json:"combined_probability"`
	SampleSize          int           `json:"sample_size"`
	Headline            string        `json:"headline"`
	SampleSizeText      string        `json:"sample_size_text"`
	Chart               ChartResponse `json:"chart"`
}

type ChartResponse struct {
	Title string        `json:"title"`
	XAxis string        `json:"x_axis"`
	YAxis string        `json:"y_axis"`
	Bars  []BarResponse `json:"bars"`
}

type BarResponse struct {
	Position  int     `json:"position"`
	Value     float64 `json:"value"`
	Highlight bool    `json:"highlight"`
	Label     string  `json:"label"`
}

type MetaResp struct {
	RequestID string    `json:"request_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActionRequest is one user action, posted or sent over the stream.
type ActionRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type StartSessionRequest struct {
	Stack string `json:"stack"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package apimodels

// DemoResponse is the unit the demo pipeline hands back to the widget.
// Exactly one upstream result backs it; failures still produce a valid
// response with the apology text and no chart.
type DemoResponse struct {
	// Text is the markdown summary shown in the chat pane.
	Text string `json:"text"`

	// Chart is a self-contained HTML chart fragment, empty when the
	// query failed or did not resolve.
	Chart string `json:"chart,omitempty"`

	// Responder is the persona the answer is attributed to.
	Responder string `json:"responder"`

	// SessionID echoes (or mints) the widget session.
	SessionID string `json:"sessionId,omitempty"`
}

type ContactResponse struct {
	Status string `json:"status"`
}

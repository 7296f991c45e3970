package apimodels

type DemoRequest struct {
	// Query is the free-text question typed into the chat widget.
	Query string `json:"query"`

	// SessionID identifies the widget's session. Empty on the first
	// query; the server mints one and returns it.
	SessionID string `json:"sessionId,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

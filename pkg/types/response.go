package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// Redirect tells the client which step of the flow to show next.
type Redirect struct {
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}

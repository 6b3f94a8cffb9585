package models

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// Message is a generic acknowledgement body, e.g. after delete or logout.
type Message struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

package challenge

// Acknowledgement is the body returned for every payload that carries no challenge.
const Acknowledgement = "ok"

// EventPayload is the subset of an Events API delivery this service reads.
type EventPayload struct {
	// Challenge is the token sent during URL verification. Nil when the field is absent or null.
	Challenge *string `json:"challenge"`
	// Type is the outer event type, e.g. "url_verification" or "event_callback".
	Type string `json:"type"`
}

// ChallengeResponse echoes the verification token back to the sender.
type ChallengeResponse struct {
	// Challenge is the exact value received in the request.
	Challenge string `json:"challenge"`
}

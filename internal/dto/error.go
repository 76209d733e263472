package dto

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error"`
}

// Message is the body of mutations that acknowledge without a projection.
type Message struct {
	Message string `json:"message"`
}

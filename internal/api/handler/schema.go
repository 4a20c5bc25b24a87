package handler

// messageResponse is the standard envelope returned when there is no
// resource body: errors and acknowledgements alike.
type messageResponse struct {
	Message string `json:"message"`
}

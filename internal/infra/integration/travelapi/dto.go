package travelapi

// errorResponse is the only envelope the backend guarantees on failure,
// and even `detail` is optional.
type errorResponse struct {
	Detail string `json:"detail"`
}

package handler

// Shared response envelopes. Mutation responses mirror the store's write
// acknowledgement so clients can tell a zero-effect operation from an
// effective one.

type insertResponse struct {
	InsertedID string `json:"inserted_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// partialUpdate carries a shallow field merge. Keys map one-to-one onto
// stored fields; only the provided keys change.
type partialUpdate map[string]any

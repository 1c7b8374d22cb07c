package ports

// UpdateResult reports the effect of an update, mirroring the store's write
// acknowledgement. A zero MatchedCount means the target did not exist, which
// is not an error for any exposed operation.
type UpdateResult struct {
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
	UpsertedID    string `json:"upserted_id,omitempty"`
}

// DeleteResult reports the effect of a delete. Deleting an absent record is a
// zero-effect success.
type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}

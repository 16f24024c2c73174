package model

// Write acknowledgments mirror the shapes the MongoDB driver hands back, so
// existing clients keep reading matchedCount/modifiedCount/deletedCount.

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

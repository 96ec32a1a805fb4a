package types

// QueryWinnerResponse ties the winning proposal to the index it was registered under
type QueryWinnerResponse struct {
	Index     uint64
	Name      string
	VoteCount uint64
}

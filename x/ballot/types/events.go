package types

// Event types
const (
	EventTypeGrantVotingRight = "grantVotingRight"
	EventTypeDelegate         = "delegate"
	EventTypeVote             = "vote"
)

// Event attribute keys
const (
	AttributeModule = ModuleName

	AttributeVoter    = "voter"
	AttributeDelegate = "delegate"
	AttributeProposal = "proposal"
	AttributeWeight   = "weight"
)

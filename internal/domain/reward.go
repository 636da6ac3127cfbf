package domain

// RewardEntry is an append-only ledger row. Amount is always positive;
// the system has no debit operation.
type RewardEntry struct {
	ID        int32  `json:"reward_id"`
	UserID    int32  `json:"user_id"`
	Amount    int32  `json:"amount"`
	Reason    string `json:"reason"`
	CreatedOn string `json:"created_at"`
}

// ReasonClaimApproved is the ledger reason recorded when a found-item
// claim approval credits the finder.
const ReasonClaimApproved = "Claim approved"

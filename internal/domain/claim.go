package domain

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Claim records a user's assertion over an item. Claims are never deleted;
// their status is the audit trail of the hub's decision.
type Claim struct {
	ID         int32       `json:"claim_id"`
	ClaimantID int32       `json:"user_id"`
	ItemID     int32       `json:"item_id"`
	ItemType   ItemType    `json:"item_type"`
	Status     ClaimStatus `json:"status"`
	CreatedOn  string      `json:"created_at"`
}

// ClaimDetail is a claim joined with its item, as listed for hub review.
// FinderID is set only for found-item claims.
type ClaimDetail struct {
	Claim
	ItemName        string `json:"item_name"`
	ItemDescription string `json:"item_description"`
	ItemLocation    string `json:"item_location,omitempty"`
	FinderID        *int32 `json:"finder_user_id,omitempty"`
}

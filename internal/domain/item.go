package domain

type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Valid reports whether t is one of the two known item types.
func (t ItemType) Valid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

type ItemStatus string

// Lost items move active -> pending_claim -> found; found items move
// available -> pending_claim -> claimed. The only backward edge is
// pending_claim -> open status, taken when a claim is rejected.
const (
	LostStatusActive ItemStatus = "active"
	LostStatusFound  ItemStatus = "found"

	FoundStatusAvailable ItemStatus = "available"
	FoundStatusClaimed   ItemStatus = "claimed"

	StatusPendingClaim ItemStatus = "pending_claim"
)

// OpenStatus returns the initial claimable status for an item type.
func OpenStatus(t ItemType) ItemStatus {
	if t == ItemTypeLost {
		return LostStatusActive
	}
	return FoundStatusAvailable
}

// ResolvedStatus returns the terminal status for an item type.
func ResolvedStatus(t ItemType) ItemStatus {
	if t == ItemTypeLost {
		return LostStatusFound
	}
	return FoundStatusClaimed
}

type Item struct {
	ID           int32      `json:"item_id"`
	Type         ItemType   `json:"type"`
	OwnerID      int32      `json:"user_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category,omitempty"`
	Description  string     `json:"description"`
	Location     string     `json:"location,omitempty"`
	OccurredDate *string    `json:"date,omitempty"`
	Status       ItemStatus `json:"status"`
	CreatedOn    string     `json:"created_at"`
}

// SearchResult is an open item returned from search, optionally carrying
// advisory match scores when ranking was available.
type SearchResult struct {
	Item
	MatchScore float64 `json:"match_score,omitempty"`
}

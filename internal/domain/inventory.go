package domain

// InventoryEntry tracks total vs. currently available copies of one book at
// one branch. At most one entry exists per (book, branch) pair.
type InventoryEntry struct {
	ID                int32 `json:"id"`
	BookID            int32 `json:"book_id"`
	BranchID          int32 `json:"branch_id"`
	TotalQuantity     int32 `json:"total_quantity"`
	AvailableQuantity int32 `json:"available_quantity"`
}

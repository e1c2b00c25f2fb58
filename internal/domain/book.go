package domain

// BookTypeBook is the distinguished category subject to the primary
// borrow-limit configuration. Every other type falls under the default limit.
const BookTypeBook = "Book"

type Book struct {
	ID              int32  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int32  `json:"publication_year"`
	Type            string `json:"type"`
}

// BranchStock is the per-branch availability view returned by book search.
type BranchStock struct {
	BranchName        string `json:"branch_name"`
	TotalQuantity     int32  `json:"total_quantity"`
	AvailableQuantity int32  `json:"available_quantity"`
}

type BookWithStock struct {
	Book      Book          `json:"book"`
	Locations []BranchStock `json:"locations"`
}

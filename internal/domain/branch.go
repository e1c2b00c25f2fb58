package domain

// Branch is a physical library location holding its own inventory per book.
type Branch struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

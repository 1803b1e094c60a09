package models

// Tag is an interest topic identified by its exact, case-sensitive title.
type Tag struct {
	ID    int64
	Title string
}

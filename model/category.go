package model

// Category is a browse category.
type Category struct {
	Href  string  `json:"href"`
	Icons []Image `json:"icons"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
}

// Categories wraps the browse categories page.
type Categories struct {
	Categories Page[Category] `json:"categories"`
}

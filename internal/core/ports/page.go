package ports

// PageRequest is the window a list query returns. The transport layer maps
// both limit/offset and page/size parameters onto it.
type PageRequest struct {
	Offset int
	Limit  int
}

// Page is one window of a list query plus the total count of matches.
type Page[T any] struct {
	Items []T
	Total int64
}

package domain

// NewsItem is a normalized entry of the technology news feed.
// URL is the identity key used for likes.
type NewsItem struct {
	Title   string
	Summary string
	URL     string
	Likes   int
}

// JobItem is a normalized remote-job listing.
type JobItem struct {
	Title    string
	Company  string
	Location string
	URL      string
	Likes    int
}

// Page is everything the index template needs.
type Page struct {
	News []NewsItem
	Jobs []JobItem
}

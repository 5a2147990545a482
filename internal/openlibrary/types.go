package openlibrary

import "fmt"

// NoISBN marks a record whose search entry carried no ISBN data.
const NoISBN = "—"

// iaISBNPrefix marks ISBN entries in the internet archive identifier list.
const iaISBNPrefix = "isbn_"

// Record is a normalized search result.
type Record struct {
	Title  string
	Author string // comma-joined when the book has several authors
	Year   int    // 0 when unknown
	ISBNs  string // comma-joined, or NoISBN
}

func (r Record) String() string {
	return fmt.Sprintf("%s — %s (%d) ISBN: %s", r.Title, r.Author, r.Year, r.ISBNs)
}

// searchResponse matches the search.json response structure.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
	IA               []string `json:"ia"`
}

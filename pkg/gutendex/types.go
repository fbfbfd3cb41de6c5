// Package gutendex exposes the Gutendex book catalog (https://gutendex.com/)
// as typed records with strict schema validation and lazy pagination.
package gutendex

// Person is an author or translator as documented at https://gutendex.com/:
//
//	{
//	  "birth_year": <number or null>,
//	  "death_year": <number or null>,
//	  "name": <string>
//	}
//
// Nil pointers marshal back to explicit JSON null, matching the wire shape.
type Person struct {
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
	Name      string `json:"name"`
}

// Book is a single catalog entry as documented at https://gutendex.com/:
//
//	{
//	  "id": <number of Project Gutenberg ID>,
//	  "title": <string>,
//	  "subjects": <array of strings>,
//	  "authors": <array of Persons>,
//	  "translators": <array of Persons>,
//	  "bookshelves": <array of strings>,
//	  "languages": <array of strings>,
//	  "copyright": <boolean or null>,
//	  "media_type": <string>,
//	  "formats": <Format>,
//	  "download_count": <number>
//	}
//
// Formats is an open mapping from format name (MIME type) to URL; the API
// does not enumerate its keys.
type Book struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Subjects      []string          `json:"subjects"`
	Authors       []Person          `json:"authors"`
	Translators   []Person          `json:"translators"`
	Bookshelves   []string          `json:"bookshelves"`
	Languages     []string          `json:"languages"`
	Copyright     *bool             `json:"copyright"`
	MediaType     string            `json:"media_type"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int               `json:"download_count"`
}

// Page is one paginated API response:
//
//	{
//	  "count": <number>,
//	  "next": <string or null>,
//	  "previous": <string or null>,
//	  "results": <array of Books>
//	}
//
// results holds 0-32 books, next/previous are absolute URLs to the adjacent
// pages, and count is the total number of books for the query across all
// pages. A Page is transient: it exists to hand over Results and Next.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Book  `json:"results"`
}

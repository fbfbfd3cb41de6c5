package gutendex

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON body: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaError reports valid JSON that does not match the documented page
// shape. Field is a path into the document, e.g. "results[3].authors[0].name".
type SchemaError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch at %q: %s", e.Field, e.Reason)
}

// Shadow types mirror the wire shape with every field as a pointer so that
// presence can be checked after unmarshaling. An absent field and an explicit
// null both leave the pointer nil; for required fields that is a SchemaError,
// for optional ones it carries through as nil.

type personJSON struct {
	BirthYear *int    `json:"birth_year"`
	DeathYear *int    `json:"death_year"`
	Name      *string `json:"name"`
}

type bookJSON struct {
	ID            *int               `json:"id"`
	Title         *string            `json:"title"`
	Subjects      *[]string          `json:"subjects"`
	Authors       *[]personJSON      `json:"authors"`
	Translators   *[]personJSON      `json:"translators"`
	Bookshelves   *[]string          `json:"bookshelves"`
	Languages     *[]string          `json:"languages"`
	Copyright     *bool              `json:"copyright"`
	MediaType     *string            `json:"media_type"`
	Formats       *map[string]string `json:"formats"`
	DownloadCount *int               `json:"download_count"`
}

type pageJSON struct {
	Count    *int        `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  *[]bookJSON `json:"results"`
}

// DecodePage decodes and validates one API response body. It is a pure
// function: invalid JSON returns *DecodeError, a structural mismatch
// (missing required field, wrong type, negative download_count) returns
// *SchemaError. Undocumented extra fields are ignored, and a results array
// longer than the API's usual 32 entries is not an error.
func DecodePage(body []byte) (*Page, error) {
	var raw pageJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SchemaError{
				Field:  typeErrorField(typeErr),
				Reason: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
			}
		}
		return nil, &DecodeError{Err: err}
	}
	return raw.toPage()
}

// typeErrorField extracts the best available field path from a type error.
func typeErrorField(err *json.UnmarshalTypeError) string {
	if err.Field != "" {
		return err.Field
	}
	return err.Struct
}

func missing(field string) *SchemaError {
	return &SchemaError{Field: field, Reason: "required field missing or null"}
}

func (p *pageJSON) toPage() (*Page, error) {
	if p.Count == nil {
		return nil, missing("count")
	}
	if p.Results == nil {
		return nil, missing("results")
	}

	page := &Page{
		Count:    *p.Count,
		Next:     p.Next,
		Previous: p.Previous,
		Results:  make([]Book, 0, len(*p.Results)),
	}

	for i, b := range *p.Results {
		book, err := b.toBook(fmt.Sprintf("results[%d]", i))
		if err != nil {
			return nil, err
		}
		page.Results = append(page.Results, book)
	}

	return page, nil
}

func (b *bookJSON) toBook(path string) (Book, error) {
	switch {
	case b.ID == nil:
		return Book{}, missing(path + ".id")
	case b.Title == nil:
		return Book{}, missing(path + ".title")
	case b.Subjects == nil:
		return Book{}, missing(path + ".subjects")
	case b.Authors == nil:
		return Book{}, missing(path + ".authors")
	case b.Translators == nil:
		return Book{}, missing(path + ".translators")
	case b.Bookshelves == nil:
		return Book{}, missing(path + ".bookshelves")
	case b.Languages == nil:
		return Book{}, missing(path + ".languages")
	case b.MediaType == nil:
		return Book{}, missing(path + ".media_type")
	case b.Formats == nil:
		return Book{}, missing(path + ".formats")
	case b.DownloadCount == nil:
		return Book{}, missing(path + ".download_count")
	}

	if *b.DownloadCount < 0 {
		return Book{}, &SchemaError{
			Field:  path + ".download_count",
			Reason: fmt.Sprintf("must be non-negative, got %d", *b.DownloadCount),
		}
	}

	authors, err := toPersons(*b.Authors, path+".authors")
	if err != nil {
		return Book{}, err
	}
	translators, err := toPersons(*b.Translators, path+".translators")
	if err != nil {
		return Book{}, err
	}

	return Book{
		ID:            *b.ID,
		Title:         *b.Title,
		Subjects:      *b.Subjects,
		Authors:       authors,
		Translators:   translators,
		Bookshelves:   *b.Bookshelves,
		Languages:     *b.Languages,
		Copyright:     b.Copyright,
		MediaType:     *b.MediaType,
		Formats:       *b.Formats,
		DownloadCount: *b.DownloadCount,
	}, nil
}

func toPersons(raw []personJSON, path string) ([]Person, error) {
	persons := make([]Person, 0, len(raw))
	for i, p := range raw {
		if p.Name == nil {
			return nil, missing(fmt.Sprintf("%s[%d].name", path, i))
		}
		persons = append(persons, Person{
			BirthYear: p.BirthYear,
			DeathYear: p.DeathYear,
			Name:      *p.Name,
		})
	}
	return persons, nil
}

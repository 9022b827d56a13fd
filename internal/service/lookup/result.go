package lookup

import "github.com/heartmarshall/wordlookup/internal/domain"

// Shape selects the response representation of a query result.
type Shape int

const (
	// ShapeFull is the descriptive object representation.
	ShapeFull Shape = iota
	// ShapeLight is the bare value: a boolean for search, an array for prefix.
	ShapeLight
)

func (s Shape) String() string {
	if s == ShapeLight {
		return "light"
	}
	return "full"
}

// SearchResult is the outcome of a membership query.
type SearchResult struct {
	Shape   Shape           `json:"-"`
	Word    string          `json:"word"`
	Lang    domain.Language `json:"lang"`
	Exists  bool            `json:"exists"`
	Message string          `json:"message"`
}

// Body returns the value to encode for the result's shape.
func (r SearchResult) Body() any {
	if r.Shape == ShapeLight {
		return r.Exists
	}
	return r
}

// PrefixResult is the outcome of a prefix query. Results is never nil.
type PrefixResult struct {
	Shape   Shape           `json:"-"`
	Prefix  string          `json:"prefix"`
	Lang    domain.Language `json:"lang"`
	Count   int             `json:"count"`
	Limit   int             `json:"limit"`
	Results []string        `json:"results"`
}

// Body returns the value to encode for the result's shape.
func (r PrefixResult) Body() any {
	if r.Shape == ShapeLight {
		return r.Results
	}
	return r
}

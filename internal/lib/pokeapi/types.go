package pokeapi

import (
	"fmt"
	"strconv"
	"strings"
)

// PokeResponse is the body of GET /pokemon.
type PokeResponse struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Result `json:"results"`
}

// Result is one listing entry.
type Result struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Number extracts the pokedex number from the entry URL, which ends in
// "/pokemon/<no>/".
func (r Result) Number() (int, error) {
	segments := strings.Split(r.URL, "/")
	if len(segments) < 2 {
		return 0, fmt.Errorf("unexpected pokemon url %q", r.URL)
	}

	no, err := strconv.Atoi(segments[len(segments)-2])
	if err != nil {
		return 0, fmt.Errorf("unexpected pokemon url %q: %w", r.URL, err)
	}
	return no, nil
}

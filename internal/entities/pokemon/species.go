package pokemon

import (
	"github.com/KirkDiggler/pokeroll/internal/errors"
)

// LanguageCode is a PokeAPI language resource name such as "ko" or "en"
type LanguageCode string

const (
	LanguageKorean  LanguageCode = "ko"
	LanguageEnglish LanguageCode = "en"
)

// Species is the subset of a /pokemon-species/{id} record we read
type Species struct {
	ID    int             `json:"id"`
	Names []LocalizedName `json:"names"`
}

// LocalizedName is the name of a species in one language
type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// NamedResource is a PokeAPI reference to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocalizedName returns the first name whose language matches code exactly.
// Order of Names is preserved; there is no fallback language.
func (s *Species) LocalizedName(code LanguageCode) (string, error) {
	if s != nil {
		for _, n := range s.Names {
			if n.Language.Name == string(code) {
				return n.Name, nil
			}
		}
	}

	return "", errors.NotFoundf("no %q name for species", code).
		WithMeta("language", string(code))
}

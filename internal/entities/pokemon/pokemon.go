// Package pokemon holds the partial views of PokeAPI records used by pokeroll
package pokemon

// Pokemon is the subset of a /pokemon/{id} record we read.
// Every other field of the payload is ignored when decoding.
type Pokemon struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Sprites *Sprites `json:"sprites"`
}

// Sprites holds the sprite URLs of a pokemon
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// FrontSprite returns the default front sprite URL, or "" when the record has none
func (p *Pokemon) FrontSprite() string {
	if p == nil || p.Sprites == nil {
		return ""
	}

	return p.Sprites.FrontDefault
}

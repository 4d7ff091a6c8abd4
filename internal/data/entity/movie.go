package entity

// Movie is a stored movie record. DirectorID is a plain reference to a
// Director and is never checked against the directors collection.
type Movie struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Genre      string  `json:"genre"`
	Watched    bool    `json:"watched"`
	Rate       *int    `json:"rate"`
	DirectorID *string `json:"directorId"`
}

// MovieFields is the full set of mutable movie fields. Create and Update
// both write every field, so an absent Rate or DirectorID is stored as unset.
type MovieFields struct {
	Name       string
	Genre      string
	Watched    bool
	Rate       *int
	DirectorID *string
}

func (f MovieFields) ToMovie(id string) *Movie {
	return &Movie{
		ID:         id,
		Name:       f.Name,
		Genre:      f.Genre,
		Watched:    f.Watched,
		Rate:       f.Rate,
		DirectorID: f.DirectorID,
	}
}

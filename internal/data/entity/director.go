package entity

type Director struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// DirectorFields is the full set of mutable director fields.
type DirectorFields struct {
	Name string
	Age  int
}

func (f DirectorFields) ToDirector(id string) *Director {
	return &Director{
		ID:   id,
		Name: f.Name,
		Age:  f.Age,
	}
}

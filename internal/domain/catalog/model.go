package catalog

import "time"

// Kind identifica el tipo de entrada de catálogo.
// @Enum breed, country, hobby
type Kind string

const (
	KindBreed   Kind = "breed"
	KindCountry Kind = "country"
	KindHobby   Kind = "hobby"
)

var Kinds = []Kind{KindBreed, KindCountry, KindHobby}

func (k Kind) Valid() bool {
	switch k {
	case KindBreed, KindCountry, KindHobby:
		return true
	default:
		return false
	}
}

// NameField es el nombre del campo en el JSON público.
// Country y Hobby conservan los nombres históricos de la API.
func (k Kind) NameField() string {
	switch k {
	case KindCountry:
		return "country"
	case KindHobby:
		return "name_hobby"
	default:
		return "name"
	}
}

// Entry es una entrada de referencia (raza, país o hobby).
type Entry struct {
	ID   string
	Kind Kind
	Name string

	CreatedAt time.Time
}

package babies

import "time"

// Gender define los valores aceptados para el perfil.
// @Enum boy, girl, other
type Gender string

const (
	GenderBoy   Gender = "boy"
	GenderGirl  Gender = "girl"
	GenderOther Gender = "other"
)

func ValidGender(g string) bool {
	switch Gender(g) {
	case GenderBoy, GenderGirl, GenderOther:
		return true
	}
	return false
}

// Baby representa el perfil de un bebé registrado por un usuario.
// El UserID es inmutable después de la creación; todos los logs cuelgan
// de este perfil vía BabyID.
type Baby struct {
	ID     int64  `json:"id"`
	UserID string `json:"userId"`

	Name      string     `json:"name"`
	Gender    Gender     `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

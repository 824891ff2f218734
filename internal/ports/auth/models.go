package auth

// Claims es la información extraída del token de sesión.
type Claims struct {
	UserID string
	Email  string
}

package ports

// TokenIssuer firma tokens de sesión para usuarios autenticados
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

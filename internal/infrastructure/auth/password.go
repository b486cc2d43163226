package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword genera el hash bcrypt de una contraseña en texto plano
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifica una contraseña contra su hash almacenado.
// La comparación interna de bcrypt es de tiempo constante.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

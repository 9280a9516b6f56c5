package account

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new hashes.
var PasswordCost = bcrypt.DefaultCost

const unusablePrefix = "!"

// HashPassword hashes password with bcrypt. An empty password yields an
// unusable marker that never verifies.
func HashPassword(password string) (string, error) {
	if password == "" {
		return unusablePrefix + uuid.NewString(), nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	if hash == "" || strings.HasPrefix(hash, unusablePrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func HasUsablePassword(hash string) bool {
	return hash != "" && !strings.HasPrefix(hash, unusablePrefix)
}

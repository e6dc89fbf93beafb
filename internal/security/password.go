package security

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor for stored credentials. Raising it
// slows every login verify, so it changes only with a hardware bump.
const hashCost = 12

// HashPassword returns the bcrypt hash stored on the user document.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	return string(b), err
}

// CheckPassword reports whether pw matches a stored hash. Any bcrypt
// error, malformed hash included, reads as a mismatch.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier hashes and verifies passwords with bcrypt. The cost
// factor is tunable so operators can raise the work factor as hardware
// gets faster; bcrypt's comparison is constant-time.
type PasswordVerifier struct {
	cost int
}

// NewPasswordVerifier creates a verifier with the given bcrypt cost.
// Costs outside bcrypt's valid range fall back to the library default.
func NewPasswordVerifier(cost int) *PasswordVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordVerifier{cost: cost}
}

// Hash derives a salted one-way digest of the plaintext.
func (v *PasswordVerifier) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
func (v *PasswordVerifier) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

package domain

import "github.com/google/uuid"

// ValidID 只接受 36 位带连字符的 RFC 4122 UUID（版本 1-5），在查库前拦截畸形 ID
func ValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	v := u.Version()
	return v >= 1 && v <= 5 && u.Variant() == uuid.RFC4122
}

package utils

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the 10 salt rounds used for existing hashes.
const DefaultCost = bcrypt.DefaultCost

// MaxPasswordBytes bcrypt 只接受 72 字节以内的输入
const MaxPasswordBytes = 72

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// Bcrypt 把上面两个函数包装成可注入的 hasher
type Bcrypt struct{}

func (Bcrypt) Hash(pw string) (string, error) { return HashPassword(pw) }
func (Bcrypt) Check(pw, hashed string) bool   { return CheckPassword(pw, hashed) }

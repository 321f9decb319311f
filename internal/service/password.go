// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 接收明文密碼與 cost，回傳 bcrypt 哈希字串
func HashPassword(password string, cost int) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword 比對明文密碼與 bcrypt 哈希，相符回傳 true
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

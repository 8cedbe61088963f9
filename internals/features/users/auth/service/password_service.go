package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash dibandingkan saat username tidak ada, supaya waktu respons sama.
var dummyHash = sync.OnceValue(func() string {
	h, _ := HashPassword("jemaat-dummy-password")
	return h
})

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword returns nil when plain matches the stored hash.
func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BurnPasswordCheck runs one bcrypt comparison against a throwaway hash.
func BurnPasswordCheck(plain string) {
	_ = CheckPassword(dummyHash(), plain)
}

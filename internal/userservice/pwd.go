package userservice

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func (p *Password) set(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	if err != nil {
		return err
	}

	p.Plain = pwd
	p.hash = hash

	return nil
}

func (p *Password) compare(pwd string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.hash, []byte(pwd))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

// compareDummy burns a hash comparison against a fixed hash so that a login
// attempt for an unknown username costs the same as one for a known
// username with a wrong password.
func compareDummy(pwd string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("eZ6qR2nV8wD4xS1c"), bcryptCost)
	})

	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(pwd))
}

package userservice

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	dummyHash     []byte
	dummyHashOnce sync.Once
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

// burnCompare spends the same bcrypt work as a real comparison so unknown
// emails cannot be told apart from wrong passwords by response time.
func burnCompare(pwd string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(pwd))
}

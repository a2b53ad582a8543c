package repo

import (
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type InMemoryUserRepository struct {
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{nextID: 1}
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	u.ID = r.nextID
	r.nextID++
	u.LastLogin = time.Now().UTC()
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(id int) (models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	return r.users, nil
}

func (r *InMemoryUserRepository) UpdateLastLogin(id int) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].LastLogin = time.Now().UTC()
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *InMemoryUserRepository) Clear() {
	r.users = nil
	r.nextID = 1
}

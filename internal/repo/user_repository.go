package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
	GetByID(id int) (models.User, error)
	GetAll() ([]models.User, error)
	UpdateLastLogin(id int) error
}

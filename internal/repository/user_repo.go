package repository

import (
	"database/sql"
	"errors"

	"jetsetgo/internal/apperrors"
	"jetsetgo/internal/db"
)

type UserRepository interface {
	GetByEmail(email string) (*db.User, error)
	Create(user *db.User) (int, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{db: database}
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	err := r.db.QueryRow(
		"SELECT id, name, age, email, phone, password FROM users WHERE email = $1", email).
		Scan(&u.ID, &u.Name, &u.Age, &u.Email, &u.Phone, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(user *db.User) (int, error) {
	var id int
	err := r.db.QueryRow(
		`INSERT INTO users (name, age, email, phone, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		user.Name, user.Age, user.Email, user.Phone, user.Password).Scan(&id)
	if err != nil {
		// users.email is UNIQUE, so a concurrent signup that slipped past the
		// lookup still surfaces as the same conflict outcome.
		if isUniqueViolation(err) {
			return 0, apperrors.ErrUserExists
		}
		return 0, err
	}
	return id, nil
}

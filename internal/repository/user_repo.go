package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// UserRepository handles data access for API users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user; a duplicate email maps to ErrEmailExists.
func (r *UserRepository) Create(u *models.User) error {
	const q = `
        INSERT INTO users (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	err := r.db.QueryRowx(q, u.Email, u.PasswordHash, u.Role).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return utils.ErrEmailExists
	}
	return err
}

// GetByEmail returns a user by email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	const q = `SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1`
	if err := r.db.Get(&u, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

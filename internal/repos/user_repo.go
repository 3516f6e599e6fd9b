package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"shambasoko/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// Insert creates a user and returns the generated id. The uniqueness check and
// the insert run in one transaction so a phone conflict leaves no partial row.
func (r *UserRepo) Insert(fullname, phone, password, role string) (int64, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.Get(&n, `SELECT COUNT(*) FROM users WHERE phone=?`, phone); err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, fmt.Errorf("phone %w", domain.ErrConflict)
	}

	res, err := tx.Exec(`INSERT INTO users(fullname, phone, password, role) VALUES(?, ?, ?, ?)`,
		fullname, phone, password, role)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// ByCredentials looks a user up by exact phone+password match. Both an unknown
// phone and a wrong password come back as domain.ErrNotFound.
func (r *UserRepo) ByCredentials(phone, password string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
		SELECT id, fullname, phone, password, role, created_at
		FROM users
		WHERE phone = ? AND password = ?
	`, phone, password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users newest first. The password column is never selected.
func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `
		SELECT id, fullname, phone, role, created_at
		FROM users
		ORDER BY datetime(created_at) DESC, id DESC
	`)
	return out, err
}

func (r *UserRepo) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %w", domain.ErrNotFound)
	}
	return nil
}

func (r *UserRepo) Count() (int, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM users`)
	return n, err
}

func (r *UserRepo) CountByRole(role string) (int, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE role=?`, role)
	return n, err
}

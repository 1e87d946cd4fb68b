package services

import (
	"context"

	"github.com/isandov/storefront-be/internal/database"
	"github.com/isandov/storefront-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, email, password, ip string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListVisitorLogs(ctx context.Context) ([]models.VisitorLog, error)
}

// UserService persists and lists application users.
type UserService struct {
	db database.Querier
}

// NewUserService creates a new UserService.
func NewUserService(db database.Querier) *UserService {
	return &UserService{db: db}
}

var _ UserServiceProvider = (*UserService)(nil)

// CreateUser inserts one user row and returns the stored record. The
// password is persisted verbatim and not echoed back.
func (s *UserService) CreateUser(ctx context.Context, email, password, ip string) (models.User, error) {
	const query = `INSERT INTO app_users (email, password, ip)
		VALUES ($1, $2, $3)
		RETURNING id, email, ip, created_at`

	var user models.User
	row := s.db.QueryRow(ctx, query, email, password, ip)
	if err := row.Scan(&user.ID, &user.Email, &user.IP, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ListUsers returns every stored user, most recently created first.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `SELECT id, email, password, ip, created_at
		FROM app_users
		ORDER BY id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.IP, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListVisitorLogs returns the same rows as ListUsers projected without the
// password column, most recently created first.
func (s *UserService) ListVisitorLogs(ctx context.Context) ([]models.VisitorLog, error) {
	const query = `SELECT id, email, ip, created_at
		FROM app_users
		ORDER BY id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.VisitorLog, 0)
	for rows.Next() {
		var l models.VisitorLog
		if err := rows.Scan(&l.ID, &l.Email, &l.IP, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

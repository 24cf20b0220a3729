package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
)

var userColumns = []string{"id", "full_name", "email", "role", "room_number", "created_at"}

// UserRepository reads identities owned by the auth collaborator.
type UserRepository struct {
	router *database.Router
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(router *database.Router) *UserRepository {
	return &UserRepository{router: router}
}

func scanUser(row pgx.Row) (*domain.Identity, error) {
	var u domain.Identity
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.RoomNumber, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// GetByID retrieves an identity from the primary store so role changes apply immediately.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.Identity, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for user: %w", err)
	}

	return scanUser(r.router.Primary().QueryRow(ctx, query, args...))
}

// GetByEmail retrieves an identity by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByEmail query for user: %w", err)
	}

	return scanUser(r.router.Primary().QueryRow(ctx, query, args...))
}

// GetByIDForShare reads an identity with FOR SHARE inside a transaction, so its role
// cannot change before the transaction commits.
func (r *UserRepository) GetByIDForShare(ctx context.Context, tx pgx.Tx, userID string) (*domain.Identity, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForShare query for user %s: %w", userID, err)
	}

	return scanUser(tx.QueryRow(ctx, query, args...))
}

// ListByRole returns identities holding the given role, ordered by name.
func (r *UserRepository) ListByRole(ctx context.Context, mode domain.ReadMode, role domain.Role) ([]*domain.Identity, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"role": role}).
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByRole query: %w", err)
	}

	rows, err := r.router.ForMode(mode).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.Identity, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return users, nil
}

// Create inserts an identity. Used by the create-user command and tests.
func (r *UserRepository) Create(ctx context.Context, u *domain.Identity) (*domain.Identity, error) {
	query, args, err := psql.
		Insert("users").
		Columns("full_name", "email", "role", "room_number").
		Values(u.FullName, u.Email, u.Role, u.RoomNumber).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for user: %w", err)
	}

	if err := r.router.Primary().QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

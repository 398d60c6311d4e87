package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"resumatch/internal/domain/user"
)

// UserRepository implements user.Repository with prepared statements over
// the pool's database/sql view. Auth queries run on every request, so the
// statements are prepared once at startup.
type UserRepository struct {
	db *sql.DB

	stmtCreate         *sql.Stmt
	stmtGetByID        *sql.Stmt
	stmtGetByEmail     *sql.Stmt
	stmtExistsEmail    *sql.Stmt
	stmtExistsUsername *sql.Stmt
}

func NewUserRepository(db *sql.DB) (*UserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}
	r := &UserRepository{db: db}

	prepare := func(dst **sql.Stmt, query string) error {
		if *dst != nil {
			return nil
		}
		s, err := db.PrepareContext(context.Background(), query)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}

	steps := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.stmtCreate, `INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`},
		{&r.stmtGetByID, `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users WHERE id = $1`},
		{&r.stmtGetByEmail, `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`},
		{&r.stmtExistsEmail, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`},
		{&r.stmtExistsUsername, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`},
	}
	for _, st := range steps {
		if err := prepare(st.dst, st.query); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsEmail)
	closeStmt(r.stmtExistsUsername)

	return firstErr
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.stmtCreate.ExecContext(ctx, u.ID, u.Username, u.Email, u.PasswordHash, u.Role)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.stmtGetByID.QueryRowContext(ctx, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.stmtGetByEmail.QueryRowContext(ctx, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.stmtExistsUsername.QueryRowContext(ctx, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

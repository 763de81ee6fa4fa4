package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/user"
)

type userRepository struct {
	db core.DBExecutor
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

type userRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toUser() user.User {
	return user.User{
		ID:        r.ID,
		Name:      r.Name,
		Role:      r.Role,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
	}
}

func (repo userRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM "user" WHERE email = $1)`, email)
	if err != nil {
		return trapConnErr(err, "checking email uniqueness")
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO "user" (id, name, role, email, created_at) VALUES ($1, $2, $3, $4, $5)`,
		usr.ID, usr.Name, usr.Role, usr.Email, usr.CreatedAt,
	)
	if err != nil {
		return user.User{}, trapConnErr(err, "inserting user")
	}
	return usr, nil
}

func (repo userRepository) FilterUsersByRole(ctx context.Context, role string) ([]user.User, error) {
	var rows []userRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT id, name, role, email, created_at FROM "user" WHERE role = $1 ORDER BY created_at`, role)
	if err != nil {
		return nil, trapConnErr(err, "filtering users by role")
	}
	users := make([]user.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.toUser())
	}
	return users, nil
}

func (repo userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var r userRow
	err := repo.db.GetContext(ctx, &r,
		`SELECT id, name, role, email, created_at FROM "user" WHERE email = $1`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, trapConnErr(err, "getting user by email")
	}
	return r.toUser(), nil
}

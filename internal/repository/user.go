package repository

import (
	"context"
	"strings"

	"github.com/FarzanehSa/LightBnB/internal/logger"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/rs/zerolog"
)

const userColumns = `id, name, email, password`

type UserRepository struct {
	db  DBTX
	log *zerolog.Logger
}

func NewUserRepository(db DBTX, log *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// GetUserWithEmail looks a user up by email. Emails are stored lower-case,
// so the lookup is case-insensitive.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		logQueryError(ctx, r.log, "GetUserWithEmail", err)
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		logQueryError(ctx, r.log, "GetUserWithID", err)
		return nil, err
	}
	return user, nil
}

// AddUser inserts a user and returns the stored row. Password must already be hashed.
func (r *UserRepository) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query, user.Name, strings.ToLower(user.Email), user.Password))
	if err != nil {
		logQueryError(ctx, r.log, "AddUser", err)
		return nil, err
	}

	logger.FromContext(ctx, r.log).Info().Int64("user_id", created.ID).Msg("user added")
	return created, nil
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, notFoundAs("users", err)
	}
	return &u, nil
}

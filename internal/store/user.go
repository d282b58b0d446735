package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AbhradeepMukherjee/CalenderApp/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, firebase_uid, name, email) VALUES ($1,$2,$3,$4)`,
		u.ID, u.FirebaseUID, u.Name, u.Email,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUserExists
	}
	return err
}

func (s *Store) UserByFirebaseUID(ctx context.Context, firebaseUID string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, firebase_uid, name, email, created_at, updated_at
		 FROM users WHERE firebase_uid = $1`, firebaseUID,
	).Scan(&u.ID, &u.FirebaseUID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

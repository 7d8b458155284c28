package user

import (
	"context"
	"database/sql"
	"errors"
)

type pgRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) Repository {
	return &pgRepo{db: db}
}

const userColumns = `id, username, password, avatar_url, gender, age, region, signature, created_at`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.AvatarUrl,
		&u.Gender, &u.Age, &u.Region, &u.Signature, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *pgRepo) Create(ctx context.Context, u *User) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password, avatar_url, gender, age, region, signature)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		u.Username, u.Password, u.AvatarUrl, u.Gender, u.Age, u.Region, u.Signature)
	return scanUser(row)
}

func (r *pgRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *pgRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *pgRepo) FindAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *pgRepo) Save(ctx context.Context, u *User) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET username = $2, password = $3, avatar_url = $4, gender = $5,
		     age = $6, region = $7, signature = $8
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Password, u.AvatarUrl, u.Gender, u.Age, u.Region, u.Signature)
	return scanUser(row)
}

func (r *pgRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

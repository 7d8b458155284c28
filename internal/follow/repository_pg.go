package follow

import (
	"context"
	"database/sql"
)

type pgRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) Repository {
	return &pgRepo{db: db}
}

func (r *pgRepo) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID).Scan(&exists)
	return exists, err
}

func (r *pgRepo) Create(ctx context.Context, followerID, followeeID int64) error {
	// ON CONFLICT 保证重复关注幂等
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)
		 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID)
	return err
}

func (r *pgRepo) Delete(ctx context.Context, followerID, followeeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID)
	return err
}

func (r *pgRepo) FolloweeIDs(ctx context.Context, followerID int64) ([]int64, error) {
	return r.queryIDs(ctx,
		`SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY id`, followerID)
}

func (r *pgRepo) FollowerIDs(ctx context.Context, followeeID int64) ([]int64, error) {
	return r.queryIDs(ctx,
		`SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY id`, followeeID)
}

func (r *pgRepo) queryIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

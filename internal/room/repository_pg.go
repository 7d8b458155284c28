package room

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

func (r *pgRepo) Create(ctx context.Context, rm *Room) (*Room, error) {
	cp := *rm
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO rooms (name, description, max_capacity, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rm.Name, rm.Description, rm.MaxCapacity, rm.CreatedBy).
		Scan(&cp.ID, &cp.CreatedAt)
	if err != nil {
		return nil, err
	}
	if cp.Members == nil {
		cp.Members = make([]int64, 0)
	}
	return &cp, nil
}

func (r *pgRepo) FindByID(ctx context.Context, id int64) (*Room, error) {
	var rm Room
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, max_capacity, created_by, created_at
		 FROM rooms WHERE id = $1`, id).
		Scan(&rm.ID, &rm.Name, &rm.Description, &rm.MaxCapacity, &rm.CreatedBy, &rm.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	members, err := r.members(ctx, rm.ID)
	if err != nil {
		return nil, err
	}
	rm.Members = members
	return &rm, nil
}

func (r *pgRepo) FindAll(ctx context.Context) ([]*Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, max_capacity, created_by, created_at
		 FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]*Room, 0)
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.MaxCapacity,
			&rm.CreatedBy, &rm.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rm := range rooms {
		members, err := r.members(ctx, rm.ID)
		if err != nil {
			return nil, err
		}
		rm.Members = members
	}
	return rooms, nil
}

// Save 在单个事务里重写成员集合，避免部分写入
func (r *pgRepo) Save(ctx context.Context, rm *Room) (*Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rooms SET name = $2, description = $3, max_capacity = $4 WHERE id = $1`,
		rm.ID, rm.Name, rm.Description, rm.MaxCapacity)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM room_members WHERE room_id = $1`, rm.ID); err != nil {
		return nil, err
	}
	for _, userID := range rm.Members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO room_members (room_id, user_id) VALUES ($1, $2)`,
			rm.ID, userID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	cp := *rm
	return &cp, nil
}

func (r *pgRepo) members(ctx context.Context, roomID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM room_members WHERE room_id = $1 ORDER BY user_id`, roomID)
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

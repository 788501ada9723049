package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentflix/api/internal/model"
)

// CustomerRepo provides CRUD over the customers table.
type CustomerRepo struct{ db *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// List returns all customers ordered by name.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,name,phone,is_gold,created_at FROM customers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get fetches one customer by id.
func (r *CustomerRepo) Get(ctx context.Context, id uint64) (model.Customer, error) {
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,phone,is_gold,created_at FROM customers WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, ErrNotFound
	}
	return c, err
}

// Create inserts a customer and returns it with its generated id.
func (r *CustomerRepo) Create(ctx context.Context, name, phone string, isGold bool) (model.Customer, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO customers (name, phone, is_gold) VALUES (?,?,?)", name, phone, isGold)
	if err != nil {
		return model.Customer{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Customer{}, err
	}
	return model.Customer{ID: uint64(id), Name: name, Phone: phone, IsGold: isGold}, nil
}

// Update rewrites a customer row. Historical rentals keep their snapshots.
func (r *CustomerRepo) Update(ctx context.Context, c model.Customer) (model.Customer, error) {
	if _, err := r.Get(ctx, c.ID); err != nil {
		return model.Customer{}, err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE customers SET name=?, phone=?, is_gold=? WHERE id=?",
		c.Name, c.Phone, c.IsGold, c.ID)
	return c, err
}

// Delete removes a customer by id.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) (model.Customer, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM customers WHERE id=?", id)
	return c, err
}

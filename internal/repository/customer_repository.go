package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ovenlight/bakery-api/internal/model"
	"github.com/ovenlight/bakery-api/internal/utils"
)

type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// Create hashes the password and inserts a customer, returning its ID.
// A duplicate email surfaces as ErrEmailExists.
func (r *CustomerRepo) Create(ctx context.Context, name, email, password, phone, address, city, zipcode string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO customers (name, email, password, phone, address, city, zipcode) VALUES (?,?,?,?,?,?,?)",
		name, email, hash, phone, address, city, zipcode)
	if err != nil {
		// 1062 = MySQL duplicate entry on the unique email key.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a customer by normalized email.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var c model.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password,phone,address,city,zipcode,created_at FROM customers WHERE email=? LIMIT 1",
		email).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Phone, &c.Address, &c.City, &c.Zipcode, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// GetByID fetches a customer by id.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (model.Customer, error) {
	var c model.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password,phone,address,city,zipcode,created_at FROM customers WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Phone, &c.Address, &c.City, &c.Zipcode, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// UpdateProfile overwrites the editable contact fields.  Email and password
// are not reachable through this path.
func (r *CustomerRepo) UpdateProfile(ctx context.Context, id uint64, name, phone, address, city, zipcode string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE customers SET name=?, phone=?, address=?, city=?, zipcode=? WHERE id=?",
		name, phone, address, city, zipcode, id)
	return err
}

// ListAll returns every customer, newest first, without password hashes.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,phone,city,created_at FROM customers ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

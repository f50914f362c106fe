package user

import (
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *User) (*User, error) {
	query := `
		INSERT INTO users (username, password, name, role, initials)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, name, role, initials;
	`
	var createdUser User
	err := r.DB.Get(&createdUser, query, user.Username, user.Password, user.Name, user.Role, user.Initials)
	return &createdUser, err
}

func (r *UserRepository) GetUsers() ([]User, error) {
	var users []User
	query := `SELECT id, username, name, role, initials FROM users ORDER BY name ASC;`
	err := r.DB.Select(&users, query)
	return users, err
}

func (r *UserRepository) GetUserByID(id int64) (*User, error) {
	var user User
	query := `SELECT id, username, name, role, initials FROM users WHERE id=$1;`
	err := r.DB.Get(&user, query, id)
	return &user, err
}

func (r *UserRepository) GetUserByUsername(username string) (*User, error) {
	var user User
	query := `SELECT id, username, password, name, role, initials FROM users WHERE username=$1;`
	err := r.DB.Get(&user, query, username)
	return &user, err
}

func (r *UserRepository) UpdateUser(id int64, user *User) (*User, error) {
	query := `
		UPDATE users SET password=$1, name=$2, role=$3, initials=$4
		WHERE id=$5
		RETURNING id, username, name, role, initials;
	`
	var updatedUser User
	err := r.DB.Get(&updatedUser, query, user.Password, user.Name, user.Role, user.Initials, id)
	return &updatedUser, err
}

func (r *UserRepository) DeleteUser(id int64) error {
	query := `DELETE FROM users WHERE id=$1;`
	_, err := r.DB.Exec(query, id)
	return err
}

// CountActiveAssignedDocuments counts non-archived documents still
// assigned to the user; deletion is blocked while any remain.
func (r *UserRepository) CountActiveAssignedDocuments(userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM documents WHERE assigned_to = $1 AND is_archived = false;`
	err := r.DB.Get(&count, query, userID)
	return count, err
}

package database

import (
	"database/sql"
	"time"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// GetUserByEmail fetches a user for login.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	user := &models.User{}
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "user", ID: email}
	}
	if err != nil {
		return nil, storageErr("get user", err)
	}
	return user, nil
}

// GetUserByID fetches one user record.
func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1`

	user := &models.User{}
	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "user", ID: userID}
	}
	if err != nil {
		return nil, storageErr("get user", err)
	}
	return user, nil
}

// IsValidUser reports whether a collector or marked-by reference points at an
// active account.
func IsValidUser(db *sql.DB, userID string) (bool, error) {
	var active bool
	err := db.QueryRow(`SELECT is_active FROM users WHERE id = $1`, userID).Scan(&active)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storageErr("check user", err)
	}
	return active, nil
}

// CreateUser inserts a back-office account with an already-hashed password.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, role, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, user.Email, user.Password, user.FirstName, user.LastName, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return &models.ConflictError{Reason: "a user with this email already exists"}
		}
		return storageErr("insert user", err)
	}
	return nil
}

// UpdateUserPassword stores a new bcrypt hash for the user.
func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, userID)
	if err != nil {
		return storageErr("update password", err)
	}
	return nil
}

// CreateSession stores a server-side login session.
func CreateSession(db *sql.DB, sessionID, userID string, expiresAt time.Time) error {
	_, err := db.Exec(`INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, NOW())`,
		sessionID, userID, expiresAt)
	if err != nil {
		return storageErr("create session", err)
	}
	return nil
}

// DeleteSession removes a session on logout.
func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return storageErr("delete session", err)
	}
	return nil
}

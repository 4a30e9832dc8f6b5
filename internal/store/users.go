package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// User is a stored student profile.
type User struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Major             string   `json:"major"`
	ResearchInterests []string `json:"research_interests"`
	Skills            []string `json:"skills"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// SearchUsersParams filters SearchUsers. Empty fields are ignored; set
// fields combine with AND as substring matches. Limit defaults to 100.
type SearchUsersParams struct {
	Name             string
	Major            string
	ResearchInterest string
	Skill            string
	Limit            int
	Offset           int
}

// InsertUser inserts a user and returns its id.
func (s *Store) InsertUser(user User) (int64, error) {
	interests, err := marshalList(user.ResearchInterests)
	if err != nil {
		return 0, err
	}
	skills, err := marshalList(user.Skills)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		`INSERT INTO users (name, major, research_interests, skills) VALUES (?, ?, ?, ?)`,
		user.Name, user.Major, interests, skills,
	)
	if err != nil {
		s.recordInsertError("users")
		return 0, fmt.Errorf("insert user: %w", err)
	}
	s.recordInsert("users")

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user id: %w", err)
	}
	return id, nil
}

// GetUserByID returns the user with the given id, or ErrNotFound.
func (s *Store) GetUserByID(id int64) (*User, error) {
	row := s.db.QueryRow(
		`SELECT id, name, major, research_interests, skills, created_at, updated_at
		 FROM users WHERE id = ?`, id)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// SearchUsers returns users matching the params, ordered by name.
func (s *Store) SearchUsers(params SearchUsersParams) ([]User, error) {
	query := `SELECT id, name, major, research_interests, skills, created_at, updated_at
	          FROM users WHERE 1=1`
	var args []any

	if params.Name != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+params.Name+"%")
	}
	if params.Major != "" {
		query += " AND major LIKE ?"
		args = append(args, "%"+params.Major+"%")
	}
	if params.ResearchInterest != "" {
		query += " AND research_interests LIKE ?"
		args = append(args, "%"+params.ResearchInterest+"%")
	}
	if params.Skill != "" {
		query += " AND skills LIKE ?"
		args = append(args, "%"+params.Skill+"%")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " ORDER BY name LIMIT ? OFFSET ?"
	args = append(args, limit, params.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("search users: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateUser replaces the named fields of the user with the given id and
// reports whether a row was updated.
func (s *Store) UpdateUser(id int64, user User) (bool, error) {
	interests, err := marshalList(user.ResearchInterests)
	if err != nil {
		return false, err
	}
	skills, err := marshalList(user.Skills)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(
		`UPDATE users
		 SET name = ?, major = ?, research_interests = ?, skills = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		user.Name, user.Major, interests, skills, id,
	)
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteUser removes the user with the given id and reports whether a row
// was deleted.
func (s *Store) DeleteUser(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearUsers removes all users.
func (s *Store) ClearUsers() error {
	if _, err := s.db.Exec(`DELETE FROM users`); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var user User
	var interests, skills sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Major, &interests, &skills,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if user.ResearchInterests, err = unmarshalList(interests); err != nil {
		return nil, err
	}
	if user.Skills, err = unmarshalList(skills); err != nil {
		return nil, err
	}
	return &user, nil
}

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/undergradassistant/backend/internal/scraper"
	"go.uber.org/zap"
)

// Professor is a stored faculty record: the scraped fields plus the
// surrogate id and timestamps assigned at insert time.
type Professor struct {
	ID int64 `json:"id"`
	scraper.Professor
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SearchProfessorsParams filters SearchProfessors. Empty fields are
// ignored; set fields combine with AND as substring matches. Limit
// defaults to 100.
type SearchProfessorsParams struct {
	Name         string
	Location     string
	ResearchArea string
	Title        string
	Limit        int
	Offset       int
}

const professorColumns = `id, name, title, position, research_interests,
	location, email, phone, personal_website, google_scholar,
	created_at, updated_at`

// InsertProfessor inserts one professor record and returns its id.
func (s *Store) InsertProfessor(prof scraper.Professor) (int64, error) {
	interests, err := marshalList(prof.ResearchInterests)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		`INSERT INTO professors (
		    name, title, position, research_interests, location,
		    email, phone, personal_website, google_scholar
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		prof.Name, prof.Title, prof.Position, interests, prof.Location,
		prof.Email, prof.Phone, prof.PersonalWebsite, prof.GoogleScholar,
	)
	if err != nil {
		s.recordInsertError("professors")
		return 0, fmt.Errorf("insert professor: %w", err)
	}
	s.recordInsert("professors")

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert professor id: %w", err)
	}
	return id, nil
}

// InsertProfessors inserts a batch best-effort: a record that fails to
// insert is logged and skipped, and the count of inserted records is
// returned. No error escapes the batch.
func (s *Store) InsertProfessors(profs []scraper.Professor) int {
	inserted := 0
	for _, prof := range profs {
		if _, err := s.InsertProfessor(prof); err != nil {
			s.log.Error("failed to insert professor",
				zap.String("name", prof.Name), zap.Error(err))
			continue
		}
		inserted++
	}
	return inserted
}

// GetAllProfessors returns every professor, ordered by name.
func (s *Store) GetAllProfessors() ([]Professor, error) {
	rows, err := s.db.Query(
		`SELECT ` + professorColumns + ` FROM professors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("get professors: %w", err)
	}
	defer rows.Close()
	return collectProfessors(rows)
}

// GetProfessorByID returns the professor with the given id, or ErrNotFound.
func (s *Store) GetProfessorByID(id int64) (*Professor, error) {
	row := s.db.QueryRow(
		`SELECT `+professorColumns+` FROM professors WHERE id = ?`, id)

	prof, err := scanProfessor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get professor: %w", err)
	}
	return prof, nil
}

// SearchProfessors returns professors matching the params, ordered by name.
func (s *Store) SearchProfessors(params SearchProfessorsParams) ([]Professor, error) {
	query := `SELECT ` + professorColumns + ` FROM professors WHERE 1=1`
	var args []any

	if params.Name != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+params.Name+"%")
	}
	if params.Location != "" {
		query += " AND location LIKE ?"
		args = append(args, "%"+params.Location+"%")
	}
	if params.ResearchArea != "" {
		query += " AND research_interests LIKE ?"
		args = append(args, "%"+params.ResearchArea+"%")
	}
	if params.Title != "" {
		query += " AND title LIKE ?"
		args = append(args, "%"+params.Title+"%")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " ORDER BY name LIMIT ? OFFSET ?"
	args = append(args, limit, params.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search professors: %w", err)
	}
	defer rows.Close()
	return collectProfessors(rows)
}

// UpdateProfessor replaces the scraped fields of the professor with the
// given id and reports whether a row was updated.
func (s *Store) UpdateProfessor(id int64, prof scraper.Professor) (bool, error) {
	interests, err := marshalList(prof.ResearchInterests)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(
		`UPDATE professors
		 SET name = ?, title = ?, position = ?, research_interests = ?,
		     location = ?, email = ?, phone = ?, personal_website = ?,
		     google_scholar = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		prof.Name, prof.Title, prof.Position, interests, prof.Location,
		prof.Email, prof.Phone, prof.PersonalWebsite, prof.GoogleScholar, id,
	)
	if err != nil {
		return false, fmt.Errorf("update professor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteProfessor removes the professor with the given id and reports
// whether a row was deleted.
func (s *Store) DeleteProfessor(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM professors WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete professor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearProfessors removes all professors.
func (s *Store) ClearProfessors() error {
	if _, err := s.db.Exec(`DELETE FROM professors`); err != nil {
		return fmt.Errorf("clear professors: %w", err)
	}
	return nil
}

// ResearchAreaCount pairs a research area with the number of professors
// listing it.
type ResearchAreaCount struct {
	ResearchArea string `json:"research_area"`
	Count        int    `json:"count"`
}

// PopularResearchAreas tallies research interests across all professors,
// most common first. Ties break alphabetically for stable output.
func (s *Store) PopularResearchAreas() ([]ResearchAreaCount, error) {
	profs, err := s.GetAllProfessors()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, prof := range profs {
		for _, area := range prof.ResearchInterests {
			counts[area]++
		}
	}

	areas := make([]ResearchAreaCount, 0, len(counts))
	for area, count := range counts {
		areas = append(areas, ResearchAreaCount{ResearchArea: area, Count: count})
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Count != areas[j].Count {
			return areas[i].Count > areas[j].Count
		}
		return areas[i].ResearchArea < areas[j].ResearchArea
	})
	return areas, nil
}

func scanProfessor(row rowScanner) (*Professor, error) {
	var prof Professor
	var interests sql.NullString
	var name, title, position, location, email, phone, website, scholar sql.NullString

	err := row.Scan(&prof.ID, &name, &title, &position, &interests,
		&location, &email, &phone, &website, &scholar,
		&prof.CreatedAt, &prof.UpdatedAt)
	if err != nil {
		return nil, err
	}

	prof.Name = name.String
	prof.Title = title.String
	prof.Position = position.String
	prof.Location = location.String
	prof.Email = email.String
	prof.Phone = phone.String
	prof.PersonalWebsite = website.String
	prof.GoogleScholar = scholar.String

	if prof.ResearchInterests, err = unmarshalList(interests); err != nil {
		return nil, err
	}
	return &prof, nil
}

func collectProfessors(rows *sql.Rows) ([]Professor, error) {
	profs := []Professor{}
	for rows.Next() {
		prof, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		profs = append(profs, *prof)
	}
	return profs, rows.Err()
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undergradassistant/backend/internal/scraper"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	s, err := Open(path, nil, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, path)
}

func TestUserRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertUser(User{
		Name:              "Alice Chen",
		Major:             "Computer Science",
		ResearchInterests: []string{"Artificial Intelligence", "Robotics"},
		Skills:            []string{"Python", "Go"},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	user, err := s.GetUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Alice Chen", user.Name)
	assert.Equal(t, "Computer Science", user.Major)
	assert.Equal(t, []string{"Artificial Intelligence", "Robotics"}, user.ResearchInterests)
	assert.Equal(t, []string{"Python", "Go"}, user.Skills)
	assert.NotEmpty(t, user.CreatedAt)
}

func TestGetUserByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserNilListsRoundTripEmpty(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertUser(User{Name: "Bob", Major: "Biology"})
	require.NoError(t, err)

	user, err := s.GetUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, user.ResearchInterests)
	assert.Equal(t, []string{}, user.Skills)
}

func TestSearchUsers(t *testing.T) {
	s := newTestStore(t)

	for _, u := range []User{
		{Name: "Alice Chen", Major: "Computer Science", Skills: []string{"Go"}},
		{Name: "Bob Jones", Major: "Computer Science", Skills: []string{"Rust"}},
		{Name: "Carol Alton", Major: "Biology"},
	} {
		_, err := s.InsertUser(u)
		require.NoError(t, err)
	}

	byMajor, err := s.SearchUsers(SearchUsersParams{Major: "Computer"})
	require.NoError(t, err)
	require.Len(t, byMajor, 2)
	assert.Equal(t, "Alice Chen", byMajor[0].Name)
	assert.Equal(t, "Bob Jones", byMajor[1].Name)

	// Filters combine with AND.
	both, err := s.SearchUsers(SearchUsersParams{Major: "Computer", Skill: "Rust"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Bob Jones", both[0].Name)

	// Substring match on name.
	al, err := s.SearchUsers(SearchUsersParams{Name: "Al"})
	require.NoError(t, err)
	assert.Len(t, al, 2)

	paged, err := s.SearchUsers(SearchUsersParams{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Bob Jones", paged[0].Name)

	none, err := s.SearchUsers(SearchUsersParams{Name: "Zelda"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertUser(User{Name: "Alice", Major: "CS"})
	require.NoError(t, err)

	updated, err := s.UpdateUser(id, User{Name: "Alice", Major: "Mathematics", Skills: []string{"Proofs"}})
	require.NoError(t, err)
	assert.True(t, updated)

	user, err := s.GetUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", user.Major)
	assert.Equal(t, []string{"Proofs"}, user.Skills)

	updated, err = s.UpdateUser(999, User{Name: "Nobody"})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestDeleteAndClearUsers(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertUser(User{Name: "Alice", Major: "CS"})
	require.NoError(t, err)

	deleted, err := s.DeleteUser(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteUser(id)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.InsertUser(User{Name: "Bob", Major: "Bio"})
	require.NoError(t, err)
	require.NoError(t, s.ClearUsers())

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
}

func sampleProfessor(name string) scraper.Professor {
	return scraper.Professor{
		Name:              name,
		Title:             "Associate Professor",
		Position:          "Khoury College of Computer Sciences",
		ResearchInterests: []string{"Machine Learning"},
		Location:          "Boston",
		Email:             name + "@u.edu",
	}
}

func TestProfessorRoundTrip(t *testing.T) {
	s := newTestStore(t)

	prof := sampleProfessor("Jane Doe")
	prof.Phone = "617.373.2462"
	prof.PersonalWebsite = "https://janedoe.example.com"
	prof.GoogleScholar = "https://scholar.google.com/citations?user=abc"

	id, err := s.InsertProfessor(prof)
	require.NoError(t, err)

	got, err := s.GetProfessorByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Associate Professor", got.Title)
	assert.Equal(t, []string{"Machine Learning"}, got.ResearchInterests)
	assert.Equal(t, "617.373.2462", got.Phone)
	assert.Equal(t, "https://janedoe.example.com", got.PersonalWebsite)
	assert.Equal(t, "https://scholar.google.com/citations?user=abc", got.GoogleScholar)
	assert.NotEmpty(t, got.CreatedAt)

	_, err = s.GetProfessorByID(id + 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertProfessorsBestEffort(t *testing.T) {
	s := newTestStore(t)

	// Force a mid-batch failure with a uniqueness constraint.
	_, err := s.db.Exec(`CREATE UNIQUE INDEX idx_test_unique_email ON professors (email)`)
	require.NoError(t, err)

	batch := []scraper.Professor{
		sampleProfessor("Jane Doe"),
		sampleProfessor("Jane Doe"), // duplicate email, rejected
		sampleProfessor("John Smith"),
	}

	inserted := s.InsertProfessors(batch)
	assert.Equal(t, 2, inserted)

	profs, err := s.GetAllProfessors()
	require.NoError(t, err)
	require.Len(t, profs, 2)
	assert.Equal(t, "Jane Doe", profs[0].Name)
	assert.Equal(t, "John Smith", profs[1].Name)
}

func TestSearchProfessors(t *testing.T) {
	s := newTestStore(t)

	a := sampleProfessor("Jane Doe")
	a.ResearchInterests = []string{"Machine Learning", "Robotics"}
	b := sampleProfessor("John Smith")
	b.Location = "Seattle"
	b.Title = "Teaching Professor"
	c := sampleProfessor("Mary Major")
	c.ResearchInterests = []string{"Systems"}

	for _, prof := range []scraper.Professor{a, b, c} {
		_, err := s.InsertProfessor(prof)
		require.NoError(t, err)
	}

	byArea, err := s.SearchProfessors(SearchProfessorsParams{ResearchArea: "Robotics"})
	require.NoError(t, err)
	require.Len(t, byArea, 1)
	assert.Equal(t, "Jane Doe", byArea[0].Name)

	byLoc, err := s.SearchProfessors(SearchProfessorsParams{Location: "Boston"})
	require.NoError(t, err)
	assert.Len(t, byLoc, 2)

	byTitle, err := s.SearchProfessors(SearchProfessorsParams{Title: "Teaching"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "John Smith", byTitle[0].Name)

	combined, err := s.SearchProfessors(SearchProfessorsParams{Name: "J", Location: "Boston"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Jane Doe", combined[0].Name)
}

func TestUpdateAndDeleteProfessor(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertProfessor(sampleProfessor("Jane Doe"))
	require.NoError(t, err)

	revised := sampleProfessor("Jane Doe")
	revised.Location = "Oakland"
	updated, err := s.UpdateProfessor(id, revised)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := s.GetProfessorByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", got.Location)

	deleted, err := s.DeleteProfessor(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteProfessor(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)

	_, err := s.InsertUser(User{Name: "Alice", Major: "CS"})
	require.NoError(t, err)
	_, err = s.InsertUser(User{Name: "Bob", Major: "CS"})
	require.NoError(t, err)

	boston := sampleProfessor("Jane Doe")
	seattle := sampleProfessor("John Smith")
	seattle.Location = "Seattle"
	for _, prof := range []scraper.Professor{boston, seattle} {
		_, err := s.InsertProfessor(prof)
		require.NoError(t, err)
	}

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalProfessors)
	assert.Equal(t, 1, stats.UniqueMajors)
	assert.Equal(t, 2, stats.UniqueLocations)
	assert.Equal(t, []string{"CS"}, stats.Majors)
	assert.ElementsMatch(t, []string{"Boston", "Seattle"}, stats.Locations)
}

func TestPopularResearchAreas(t *testing.T) {
	s := newTestStore(t)

	a := sampleProfessor("A")
	a.ResearchInterests = []string{"Machine Learning", "Robotics"}
	b := sampleProfessor("B")
	b.ResearchInterests = []string{"Machine Learning"}
	c := sampleProfessor("C")
	c.ResearchInterests = []string{"Algorithms"}

	for _, prof := range []scraper.Professor{a, b, c} {
		_, err := s.InsertProfessor(prof)
		require.NoError(t, err)
	}

	areas, err := s.PopularResearchAreas()
	require.NoError(t, err)
	require.Len(t, areas, 3)
	assert.Equal(t, ResearchAreaCount{ResearchArea: "Machine Learning", Count: 2}, areas[0])
	// Ties sort alphabetically.
	assert.Equal(t, ResearchAreaCount{ResearchArea: "Algorithms", Count: 1}, areas[1])
	assert.Equal(t, ResearchAreaCount{ResearchArea: "Robotics", Count: 1}, areas[2])
}

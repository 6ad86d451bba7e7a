package catalogs

import "testing"

// TestMovie creates a test movie with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestMovie(t testing.TB, id int, title string, year int) *Movie {
	t.Helper()
	return &Movie{
		ID:       id,
		Title:    title,
		Released: ReleaseDate{Day: 1, Month: 1, Year: year},
		Budget:   1000,
		Duration: 90,
		Rating:   5,
		Votes:    10,
	}
}

// TestActor creates a test actor.
func TestActor(t testing.TB, id int, name string, gender bool) *Actor {
	t.Helper()
	return &Actor{ID: id, Name: name, Gender: gender}
}

// TestCatalog creates a small catalog:
//
//	movie 1 "Alpha" (2000): John(1), Mary(2); Drama
//	movie 2 "Beta"  (2000): John(1);          Drama, Comedy
//	movie 3 "Gamma" (2001): Mary(2);          Comedy
func TestCatalog(t testing.TB) Catalog {
	t.Helper()

	cat := New()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to build test catalog: %v", err)
		}
	}

	must(cat.AddMovie(TestMovie(t, 1, "Alpha", 2000)))
	must(cat.AddMovie(TestMovie(t, 2, "Beta", 2000)))
	must(cat.AddMovie(TestMovie(t, 3, "Gamma", 2001)))

	must(cat.AddActor(TestActor(t, 1, "John", true)))
	must(cat.AddActor(TestActor(t, 2, "Mary", false)))

	must(cat.CastActor(1, 1))
	must(cat.CastActor(1, 2))
	must(cat.CastActor(2, 1))
	must(cat.CastActor(3, 2))

	must(cat.TagGenre(1, "Drama"))
	must(cat.TagGenre(2, "Drama"))
	must(cat.TagGenre(2, "Comedy"))
	must(cat.TagGenre(3, "Comedy"))

	return cat
}

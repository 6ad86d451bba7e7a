package ingest

import (
	"strconv"
	"strings"

	"github.com/agentstation/cinemap/internal/fields"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// errFieldCount marks a record with the wrong number of fields.
var errFieldCount = errors.New("wrong field count")

// split breaks a source line into fields and checks the count for id.
func split(id SourceID, line string) ([]string, error) {
	f := fields.Split(line, constants.FieldSeparator)
	if len(f) != id.fieldCount() {
		return nil, errFieldCount
	}
	return f, nil
}

// parseMovie builds a movie from id,title,dd-mm-yyyy,budget,duration,rating,votes.
func parseMovie(f []string) (*catalogs.Movie, error) {
	id, err := parseInt("movie", "id", f[0])
	if err != nil {
		return nil, err
	}
	released, err := parseDate(f[2])
	if err != nil {
		return nil, err
	}
	budget, err := parseInt("movie", "budget", f[3])
	if err != nil {
		return nil, err
	}
	duration, err := parseFloat("movie", "duration", f[4])
	if err != nil {
		return nil, err
	}
	rating, err := parseFloat("movie", "rating", f[5])
	if err != nil {
		return nil, err
	}
	votes, err := parseInt("movie", "votes", f[6])
	if err != nil {
		return nil, err
	}

	return &catalogs.Movie{
		ID:       id,
		Title:    f[1],
		Released: released,
		Budget:   budget,
		Duration: duration,
		Rating:   rating,
		Votes:    votes,
	}, nil
}

// parseActor builds an actor from actorId,name,genderFlag,movieId and
// returns the referenced movie id alongside it.
func parseActor(f []string) (*catalogs.Actor, int, error) {
	id, err := parseInt("actor", "id", f[0])
	if err != nil {
		return nil, 0, err
	}
	movieID, err := parseInt("actor", "movie id", f[3])
	if err != nil {
		return nil, 0, err
	}
	return &catalogs.Actor{
		ID:     id,
		Name:   f[1],
		Gender: catalogs.ParseGender(f[2]),
	}, movieID, nil
}

// parseGenre reads name,movieId.
func parseGenre(f []string) (string, int, error) {
	movieID, err := parseInt("genre", "movie id", f[1])
	if err != nil {
		return "", 0, err
	}
	return f[0], movieID, nil
}

// parseDate reads a dd-mm-yyyy release date.
func parseDate(s string) (catalogs.ReleaseDate, error) {
	parts := fields.Split(s, constants.DateSeparator)
	if len(parts) != 3 {
		return catalogs.ReleaseDate{}, errors.NewParseError("date", "", "expected dd-mm-yyyy, got "+strconv.Quote(s), nil)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := parseInt("date", "component", p)
		if err != nil {
			return catalogs.ReleaseDate{}, err
		}
		nums[i] = n
	}
	return catalogs.ReleaseDate{Day: nums[0], Month: nums[1], Year: nums[2]}, nil
}

func parseInt(format, field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewParseError(format, "", "invalid "+field+" "+strconv.Quote(s), err)
	}
	return n, nil
}

func parseFloat(format, field, s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.NewParseError(format, "", "invalid "+field+" "+strconv.Quote(s), err)
	}
	return n, nil
}

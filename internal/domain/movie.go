package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Genre string

const (
	GenreAction         Genre = "Action"
	GenreAdventure      Genre = "Adventure"
	GenreComedy         Genre = "Comedy"
	GenreDrama          Genre = "Drama"
	GenreFantasy        Genre = "Fantasy"
	GenreHorror         Genre = "Horror"
	GenreMystery        Genre = "Mystery"
	GenreThriller       Genre = "Thriller"
	GenreWestern        Genre = "Western"
	GenreScienceFiction Genre = "Science Fiction"
)

var genres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreComedy,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreMystery,
	GenreThriller,
	GenreWestern,
	GenreScienceFiction,
}

// Genres returns the accepted genre values in display order.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// Valid reports whether g is one of the enumerated genres.
func (g Genre) Valid() bool {
	for _, known := range genres {
		if g == known {
			return true
		}
	}
	return false
}

const (
	MinReleaseYear = 1900
	MaxReleaseYear = 2100
)

// Actor pairs a performer with the character they play.
type Actor struct {
	ActorName     string `json:"actorName"`
	CharacterName string `json:"characterName"`
}

// Movie is a single movie document.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate int       `json:"releaseDate"`
	Genre       Genre     `json:"genre"`
	Actors      []Actor   `json:"actors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the document rules enforced on every write.
func (m *Movie) Validate() error {
	var errs []error
	if strings.TrimSpace(m.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if m.ReleaseDate < MinReleaseYear {
		errs = append(errs, fmt.Errorf("releaseDate must be greater than %d", MinReleaseYear-1))
	}
	if m.ReleaseDate > MaxReleaseYear {
		errs = append(errs, fmt.Errorf("releaseDate must be less than %d", MaxReleaseYear))
	}
	if m.Genre == "" {
		errs = append(errs, errors.New("genre is required"))
	} else if !m.Genre.Valid() {
		errs = append(errs, fmt.Errorf("genre %q is not supported", m.Genre))
	}
	for i, a := range m.Actors {
		if strings.TrimSpace(a.ActorName) == "" {
			errs = append(errs, fmt.Errorf("actors[%d].actorName is required", i))
		}
		if strings.TrimSpace(a.CharacterName) == "" {
			errs = append(errs, fmt.Errorf("actors[%d].characterName is required", i))
		}
	}
	return errors.Join(errs...)
}

// MoviePatch carries a partial update. Nil fields are left untouched.
type MoviePatch struct {
	Title       *string
	ReleaseDate *int
	Genre       *Genre
	Actors      *[]Actor
}

// Apply merges the patch onto m.
func (p MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.ReleaseDate != nil {
		m.ReleaseDate = *p.ReleaseDate
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
	if p.Actors != nil {
		actors := make([]Actor, len(*p.Actors))
		copy(actors, *p.Actors)
		m.Actors = actors
	}
}

// Empty reports whether the patch changes nothing.
func (p MoviePatch) Empty() bool {
	return p.Title == nil && p.ReleaseDate == nil && p.Genre == nil && p.Actors == nil
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMovie() Movie {
	return Movie{
		Title:       "Alien",
		ReleaseDate: 1979,
		Genre:       GenreScienceFiction,
		Actors:      []Actor{{ActorName: "Sigourney Weaver", CharacterName: "Ripley"}},
	}
}

func TestMovieValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Movie)
		wantErr string
	}{
		{name: "valid", mutate: func(*Movie) {}},
		{name: "lower bound", mutate: func(m *Movie) { m.ReleaseDate = 1900 }},
		{name: "upper bound", mutate: func(m *Movie) { m.ReleaseDate = 2100 }},
		{name: "blank title", mutate: func(m *Movie) { m.Title = " " }, wantErr: "title is required"},
		{name: "too old", mutate: func(m *Movie) { m.ReleaseDate = 1899 }, wantErr: "greater than 1899"},
		{name: "too new", mutate: func(m *Movie) { m.ReleaseDate = 2101 }, wantErr: "less than 2100"},
		{name: "missing genre", mutate: func(m *Movie) { m.Genre = "" }, wantErr: "genre is required"},
		{name: "unknown genre", mutate: func(m *Movie) { m.Genre = "Musical" }, wantErr: "not supported"},
		{
			name:    "actor without character",
			mutate:  func(m *Movie) { m.Actors = append(m.Actors, Actor{ActorName: "Ian Holm"}) },
			wantErr: "actors[1].characterName is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMovie()
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenreValid(t *testing.T) {
	for _, g := range Genres() {
		assert.True(t, g.Valid(), g)
	}
	assert.False(t, Genre("science fiction").Valid())
}

func TestMoviePatchApply(t *testing.T) {
	m := sampleMovie()
	year := 1986
	title := "Aliens"

	patch := MoviePatch{Title: &title, ReleaseDate: &year}
	require.False(t, patch.Empty())
	patch.Apply(&m)

	assert.Equal(t, "Aliens", m.Title)
	assert.Equal(t, 1986, m.ReleaseDate)
	assert.Equal(t, GenreScienceFiction, m.Genre)
	assert.Len(t, m.Actors, 1)
	assert.True(t, MoviePatch{}.Empty())
}

func TestMoviePatchApply_EmptyActorsStayNonNil(t *testing.T) {
	m := sampleMovie()
	none := []Actor{}

	MoviePatch{Actors: &none}.Apply(&m)

	assert.NotNil(t, m.Actors)
	assert.Empty(t, m.Actors)
}

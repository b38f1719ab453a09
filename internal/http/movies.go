package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-api/internal/domain"
)

type actorRequest struct {
	ActorName     string `json:"actorName" binding:"required"`
	CharacterName string `json:"characterName" binding:"required"`
}

type createMovieRequest struct {
	Title       string         `json:"title" binding:"required"`
	ReleaseDate int            `json:"releaseDate" binding:"required"`
	Genre       string         `json:"genre" binding:"required"`
	Actors      []actorRequest `json:"actors" binding:"required,min=1,dive"`
}

// updateMovieRequest leaves absent fields untouched.
type updateMovieRequest struct {
	Title       *string        `json:"title"`
	ReleaseDate *int           `json:"releaseDate"`
	Genre       *string        `json:"genre"`
	Actors      []actorRequest `json:"actors" binding:"omitempty,dive"`
}

func toActors(in []actorRequest) []domain.Actor {
	out := make([]domain.Actor, len(in))
	for i := range in {
		out[i] = domain.Actor{ActorName: in[i].ActorName, CharacterName: in[i].CharacterName}
	}
	return out
}

func (h *Handler) listMovies(c *gin.Context) {
	movies, err := h.movies.ListMovies(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": movies})
}

func (h *Handler) createMovie(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	movie, err := h.movies.CreateMovie(c.Request.Context(), domain.Movie{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		Genre:       domain.Genre(req.Genre),
		Actors:      toActors(req.Actors),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	if user := currentUser(c); user != nil {
		h.logger.WithField("user_id", user.ID).WithField("movie_id", movie.ID).Info("movie created")
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": movie})
}

func (h *Handler) getMovie(c *gin.Context) {
	movie, err := h.movies.GetMovie(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": movie})
}

func (h *Handler) updateMovie(c *gin.Context) {
	var req updateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	patch := domain.MoviePatch{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
	}
	if req.Genre != nil {
		g := domain.Genre(*req.Genre)
		patch.Genre = &g
	}
	if req.Actors != nil {
		actors := toActors(req.Actors)
		patch.Actors = &actors
	}

	movie, err := h.movies.UpdateMovie(c.Request.Context(), c.Param("title"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": movie})
}

func (h *Handler) deleteMovie(c *gin.Context) {
	if err := h.movies.DeleteMovie(c.Request.Context(), c.Param("title")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Movie deleted successfully."})
}

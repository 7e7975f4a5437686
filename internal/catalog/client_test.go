package catalog

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMovieDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		fmt.Fprint(w, `{"id":550,"title":"Fight Club","poster_path":"/fc.jpg","backdrop_path":"/fc_bd.jpg"}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "https://img.example.com")
	detail, err := client.GetMovieDetail(550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", detail.Title)
	assert.Equal(t, "/fc.jpg", detail.PosterPath)
	assert.Equal(t, "/fc_bd.jpg", detail.LogoPath)
}

func TestSearchMoviesEscapesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "the thing", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		fmt.Fprint(w, `{"page":2,"results":[{"id":1091,"title":"The Thing"}],"total_pages":3,"total_results":41}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "https://img.example.com")
	result, err := client.SearchMovies("the thing", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "The Thing", result.Results[0].Title)
}

func TestCatalogErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status_message":"The resource you requested could not be found."}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "https://img.example.com")
	_, err := client.GetMovieDetail(99999999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestPosterUrl(t *testing.T) {
	client := NewClient("test-key", "https://api.example.com", "https://img.example.com")

	assert.Equal(t, "https://img.example.com/fc.jpg", client.PosterUrl("/fc.jpg"))
	assert.Equal(t, "", client.PosterUrl(""))
}

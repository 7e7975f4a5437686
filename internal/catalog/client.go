package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// IClient is the external movie catalog (TMDB) read surface.
type IClient interface {
	GetMovieDetail(movieId int64) (*MovieDetail, error)
	SearchMovies(query string, page int) (*ListResponse, error)
	TrendingMovies(page int) (*ListResponse, error)
	UpcomingMovies(page int) (*ListResponse, error)
	PosterUrl(posterPath string) string
}

type Client struct {
	apiKey       string
	baseUrl      string
	imageBaseUrl string
	httpClient   *http.Client
}

func NewClient(apiKey string, baseUrl string, imageBaseUrl string) *Client {
	return &Client{
		apiKey:       apiKey,
		baseUrl:      baseUrl,
		imageBaseUrl: imageBaseUrl,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

type MovieDetail struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
	LogoPath    string  `json:"backdrop_path"`
}

type ListItem struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
}

type ListResponse struct {
	Page         int        `json:"page"`
	Results      []ListItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

//------------------------------------------
//------------------------------------------

func (c *Client) GetMovieDetail(movieId int64) (*MovieDetail, error) {
	reqUrl := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseUrl, movieId, c.apiKey)

	var result MovieDetail
	if err := c.doGet(reqUrl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SearchMovies(query string, page int) (*ListResponse, error) {
	reqUrl := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&page=%d",
		c.baseUrl, c.apiKey, url.QueryEscape(query), page)

	var result ListResponse
	if err := c.doGet(reqUrl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) TrendingMovies(page int) (*ListResponse, error) {
	reqUrl := fmt.Sprintf("%s/trending/movie/week?api_key=%s&page=%d",
		c.baseUrl, c.apiKey, page)

	var result ListResponse
	if err := c.doGet(reqUrl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpcomingMovies(page int) (*ListResponse, error) {
	reqUrl := fmt.Sprintf("%s/movie/upcoming?api_key=%s&page=%d",
		c.baseUrl, c.apiKey, page)

	var result ListResponse
	if err := c.doGet(reqUrl, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PosterUrl builds the absolute image url from the catalog's relative path.
func (c *Client) PosterUrl(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return c.imageBaseUrl + posterPath
}

func (c *Client) doGet(reqUrl string, result interface{}) error {
	resp, err := c.httpClient.Get(reqUrl)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}

package model

import "time"

// Movie is a local cache entry for a catalog title, created lazily the
// first time a review, watchlist entry or recommendation references it.
type Movie struct {
	MovieId   int64     `gorm:"column:movie_id;type:bigint;primaryKey;" json:"movieId"`
	Title     string    `gorm:"column:title;type:text;not null;" json:"title"`
	Thumbnail string    `gorm:"column:thumbnail;type:text;default:\"\";" json:"thumbnail"`
	Logo      string    `gorm:"column:logo;type:text;default:\"\";" json:"logo"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;" json:"updatedAt"`
}

func (Movie) TableName() string {
	return "movies"
}

//------------------------------------------
//------------------------------------------

// MovieSeed carries client-submitted descriptive fields so the cache can be
// filled without a catalog round-trip.
type MovieSeed struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Logo      string `json:"logo"`
}

package model

import "time"

// WatchlistEntry holds one movie on a user's watchlist. Position 1 is the
// "currently watching" slot and position 2 is the "next up" slot; at most
// one entry per user may carry each flag.
type WatchlistEntry struct {
	Id                int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	UserId            int64     `gorm:"column:user_id;type:bigint;not null;uniqueIndex:watchlist_user_movie_key;" json:"userId"`
	MovieId           int64     `gorm:"column:movie_id;type:bigint;not null;uniqueIndex:watchlist_user_movie_key;" json:"movieId"`
	Title             string    `gorm:"column:title;type:text;not null;" json:"title"`
	Poster            string    `gorm:"column:poster;type:text;default:\"\";" json:"poster"`
	CurrentlyWatching bool      `gorm:"column:currently_watching;type:boolean;not null;default:false;" json:"currentlyWatching"`
	NextUp            bool      `gorm:"column:next_up;type:boolean;not null;default:false;" json:"nextUp"`
	Position          int       `gorm:"column:position;type:integer;not null;default:0;" json:"position"`
	CreatedAt         time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}

//------------------------------------------
//------------------------------------------

type AddWatchlistReq struct {
	MovieId int64  `json:"movieId"`
	Title   string `json:"title"`
	Poster  string `json:"poster"`
}

package model

import "time"

// Recommendation is a movie pointer from one user to another. Each receiving
// user keeps at most the 5 most recent rows, oldest evicted first.
type Recommendation struct {
	Id            int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	MovieId       int64     `gorm:"column:movie_id;type:bigint;not null;" json:"movieId"`
	RecommendedBy int64     `gorm:"column:recommended_by;type:bigint;not null;" json:"recommendedBy"`
	RecommendedTo int64     `gorm:"column:recommended_to;type:bigint;not null;index:recommendations_to_idx;" json:"recommendedTo"`
	Title         string    `gorm:"column:title;type:text;not null;" json:"title"`
	Poster        string    `gorm:"column:poster;type:text;default:\"\";" json:"poster"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

//------------------------------------------
//------------------------------------------

// RecommendationWindowSize caps how many recommendations a user retains.
const RecommendationWindowSize = 5

type AddRecommendationReq struct {
	MovieId       int64 `json:"movieId"`
	RecommendedTo int64 `json:"recommendedTo"`
}

package model

import "time"

type Review struct {
	Id             int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	UserId         int64     `gorm:"column:user_id;type:bigint;not null;index:reviews_user_id_idx;" json:"userId"`
	MovieId        int64     `gorm:"column:movie_id;type:bigint;not null;index:reviews_movie_id_idx;" json:"movieId"`
	Content        string    `gorm:"column:content;type:text;not null;" json:"content"`
	Recommendation bool      `gorm:"column:recommendation;type:boolean;not null;default:false;" json:"recommendation"`
	Rating         int       `gorm:"column:rating;type:integer;not null;default:0;" json:"rating"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

//------------------------------------------
//------------------------------------------

type ReviewLike struct {
	ReviewId  int64     `gorm:"column:review_id;type:bigint;primaryKey;" json:"reviewId"`
	UserId    int64     `gorm:"column:user_id;type:bigint;primaryKey;" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}

//------------------------------------------
//------------------------------------------

type Comment struct {
	Id        int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	ReviewId  int64     `gorm:"column:review_id;type:bigint;not null;index:comments_review_id_idx;" json:"reviewId"`
	UserId    int64     `gorm:"column:user_id;type:bigint;not null;" json:"userId"`
	Content   string    `gorm:"column:content;type:text;not null;" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

//------------------------------------------
//------------------------------------------

type CreateReviewReq struct {
	MovieId        int64  `json:"movieId"`
	Content        string `json:"content"`
	Recommendation bool   `json:"recommendation"`
	Rating         int    `json:"rating"`
	MovieTitle     string `json:"movieTitle"`
	Thumbnail      string `json:"thumbnail"`
	Logo           string `json:"logo"`
}

type CreateCommentReq struct {
	Content string `json:"content"`
}

// ReviewWithMovie is a review joined with the denormalized movie fields
// used by the review feeds.
type ReviewWithMovie struct {
	Review
	MovieTitle string `gorm:"column:movie_title" json:"movieTitle"`
	Thumbnail  string `gorm:"column:thumbnail" json:"thumbnail"`
	Logo       string `gorm:"column:logo" json:"logo"`
}

type LikesCountRes struct {
	ReviewId int64 `json:"reviewId"`
	Likes    int64 `json:"likes"`
}

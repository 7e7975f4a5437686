package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	ExceedGenres    = "Exceeded number of genres limit (6)"
	ExceedTopMovies = "Exceeded number of top movies limit (5)"
	//----------------------
	MovieNotFound          = "Movie not found"
	MoviesNotFound         = "Movies not found"
	ReviewNotFound         = "Review not found"
	ReviewsNotFound        = "Reviews not found"
	WatchlistEntryNotFound = "Watchlist entry not found"
	RecommendationNotFound = "Recommendation not found"
	//----------------------
	UserNotFound = "Cannot find user"
	//----------------------
	InvalidToken   = "Invalid/Stale Token"
	InvalidMovieId = "Invalid movieId"
	InvalidUserId  = "Invalid userId"
	//----------------------
	UserPassNotMatch = "Username and password do not match"
	//----------------------
	BadRequestBody = "Incorrect request body"
	InvalidEmail   = "Invalid email address"
	InvalidRating  = "Rating must be between 1 and 10"
	//----------------------
	UsernameAlreadyExist = "This username already exists"
	EmailAlreadyExist    = "This email already exists"
	AlreadyExist         = "Already exist"
	AlreadyLiked         = "Already liked"
	//----------------------
)

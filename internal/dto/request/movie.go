package request

type SearchRequest struct {
	Query string `json:"q"`
}

type VideosRequest struct {
	MovieID string `json:"movieId"`
}

type MovieIDRequest struct {
	MovieID string `json:"id" validate:"required,numeric,max=12"`
}

type TrailerRequest struct {
	MovieID string `json:"movieId" validate:"required,numeric,max=12"`
	Title   string `json:"title" validate:"required,max=300"`
	Year    string `json:"year" validate:"omitempty,numeric,len=4"`
}

package request

type GenreIDRequest struct {
	GenreID string `json:"id" validate:"required,numeric,max=12"`
}

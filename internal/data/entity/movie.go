package entity

type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int64 `json:"genre_ids"`
}

type MovieDetail struct {
	MovieSummary
	Runtime             int                 `json:"runtime"`
	Overview            string              `json:"overview"`
	Tagline             string              `json:"tagline"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Genres              []Genre             `json:"genres"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	OriginalLanguage    string              `json:"original_language"`
	Status              string              `json:"status"`
	BackdropPath        *string             `json:"backdrop_path"`
	Homepage            string              `json:"homepage"`
	IMDbID              string              `json:"imdb_id"`
}

type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

type ProductionCompany struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

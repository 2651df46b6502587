package response

import "movie-browser/internal/data/entity"

const youtubeEmbedBase = "https://www.youtube.com/embed/"

type VideoResponse struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	Language    string `json:"iso_639_1,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

type TrailerKeyResponse struct {
	Key      string `json:"key"`
	Source   string `json:"source"`
	EmbedURL string `json:"embed_url"`
}

type TrailerResponse struct {
	MovieID        string  `json:"movie_id"`
	Title          string  `json:"title"`
	Year           string  `json:"year"`
	TrailerVideoID *string `json:"trailer_video_id"`
	Source         string  `json:"source,omitempty"`
	EmbedURL       string  `json:"embed_url,omitempty"`
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
}

func VideoToResponse(video entity.Video) VideoResponse {
	return VideoResponse{
		ID:          video.ID,
		Key:         video.Key,
		Name:        video.Name,
		Site:        video.Site,
		Type:        video.Type,
		Official:    video.Official,
		Language:    video.Language,
		PublishedAt: video.PublishedAt,
	}
}

func VideosToResponses(videos []entity.Video) []VideoResponse {
	out := make([]VideoResponse, len(videos))
	for i, video := range videos {
		out[i] = VideoToResponse(video)
	}
	return out
}

// TrailerToKeyResponse returns nil when no trailer was found.
func TrailerToKeyResponse(resolution entity.TrailerResolution) *TrailerKeyResponse {
	if !resolution.Found() {
		return nil
	}
	return &TrailerKeyResponse{
		Key:      resolution.Key,
		Source:   string(resolution.Source),
		EmbedURL: youtubeEmbedBase + resolution.Key,
	}
}

func TrailerToResponse(movieID, title, year string, resolution entity.TrailerResolution) TrailerResponse {
	resp := TrailerResponse{
		MovieID: movieID,
		Title:   title,
		Year:    year,
		Message: "No trailer found",
	}
	if resolution.Found() {
		key := resolution.Key
		resp.TrailerVideoID = &key
		resp.Source = string(resolution.Source)
		resp.EmbedURL = youtubeEmbedBase + key
		resp.Success = true
		resp.Message = "Trailer found!"
	}
	return resp
}

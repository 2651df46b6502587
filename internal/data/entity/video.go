package entity

import "strings"

const (
	VideoTypeTrailer = "Trailer"
	VideoTypeTeaser  = "Teaser"
	VideoSiteYouTube = "YouTube"
)

type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	Language    string `json:"iso_639_1"`
	PublishedAt string `json:"published_at"`
	Channel     string `json:"channel,omitempty"`
}

// IsPlayableTrailer reports whether the record is a trailer hosted on the
// supported video platform.
func (v Video) IsPlayableTrailer() bool {
	return v.Type == VideoTypeTrailer && v.Site == VideoSiteYouTube && strings.TrimSpace(v.Key) != ""
}

// SearchResult is one hit from the video-search capability.
type SearchResult struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

type TrailerSource string

const (
	TrailerSourceNone             TrailerSource = ""
	TrailerSourceTMDB             TrailerSource = "tmdb"
	TrailerSourceSearch           TrailerSource = "search"
	TrailerSourceSearchUnverified TrailerSource = "search-unverified"
)

// TrailerResolution is the outcome of trailer lookup; an empty Key means no
// trailer was found.
type TrailerResolution struct {
	Key    string
	Source TrailerSource
	Query  string
}

func (r TrailerResolution) Found() bool {
	return r.Key != ""
}

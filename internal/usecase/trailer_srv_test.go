package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/data/repository/mocks"
	"movie-browser/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type trailerFixture struct {
	videos *mocks.MockVideoRepository
	search *mocks.MockVideoSearchRepository
	srv    TrailerService
}

func newTrailerFixture(t *testing.T, searchTimeout time.Duration) *trailerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &trailerFixture{
		videos: mocks.NewMockVideoRepository(ctrl),
		search: mocks.NewMockVideoSearchRepository(ctrl),
	}
	f.search.EXPECT().Name().Return("youtube").AnyTimes()

	repo := &repository.Repository{Video: f.videos, Search: f.search}
	config := &utils.Config{Trailer: utils.TrailerConfig{SearchTimeout: searchTimeout}}
	f.srv = NewTrailerService(repo, config, zap.NewNop())
	return f
}

func TestResolve_PrefersTMDBTrailer(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "438631").Return([]entity.Video{
		{Key: "teaser1", Site: "YouTube", Type: "Teaser"},
		{Key: "vimeo1", Site: "Vimeo", Type: "Trailer"},
		{Key: "", Site: "YouTube", Type: "Trailer"},
		{Key: "n9xhJrPXop4", Site: "YouTube", Type: "Trailer"},
		{Key: "later", Site: "YouTube", Type: "Trailer"},
	})
	f.search.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	got := f.srv.Resolve(context.Background(), "438631", "Dune", "2021")

	assert.Equal(t, entity.TrailerResolution{Key: "n9xhJrPXop4", Source: entity.TrailerSourceTMDB}, got)
}

func TestResolve_SearchFindsOfficialHitOnFirstVariant(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "438631").Return([]entity.Video{})
	f.search.EXPECT().Search(gomock.Any(), "Dune 2021 official trailer").Return([]entity.SearchResult{
		{VideoID: "fan1", Title: "Dune reaction", ChannelTitle: "Some Fan"},
		{VideoID: "8g18jFHCLXk", Title: "Dune | Official Main Trailer", ChannelTitle: "Warner Bros. Pictures"},
	}, nil)

	got := f.srv.Resolve(context.Background(), "438631", "Dune", "2021")

	assert.Equal(t, "8g18jFHCLXk", got.Key)
	assert.Equal(t, entity.TrailerSourceSearch, got.Source)
	assert.Equal(t, "Dune 2021 official trailer", got.Query)
}

func TestResolve_DegradesToFirstRawHit(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "1").Return(nil)
	f.search.EXPECT().Search(gomock.Any(), "Obscure Film 1971 official trailer").Return([]entity.SearchResult{
		{VideoID: "", Title: "broken"},
		{VideoID: "raw1", Title: "Obscure Film (1971) full scene", ChannelTitle: "Archive"},
		{VideoID: "raw2", Title: "Another clip", ChannelTitle: "Archive"},
	}, nil)

	got := f.srv.Resolve(context.Background(), "1", "Obscure Film", "1971")

	assert.Equal(t, "raw1", got.Key)
	assert.Equal(t, entity.TrailerSourceSearchUnverified, got.Source)
}

func TestResolve_TriesEveryVariantThenGivesUp(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "42").Return(nil)
	gomock.InOrder(
		f.search.EXPECT().Search(gomock.Any(), "Nothing Here 1999 official trailer").Return(nil, nil),
		f.search.EXPECT().Search(gomock.Any(), "Nothing Here 1999 trailer").Return([]entity.SearchResult{}, nil),
		f.search.EXPECT().Search(gomock.Any(), "Nothing Here 1999 teaser trailer").Return(nil, errors.New("quota exceeded")),
		f.search.EXPECT().Search(gomock.Any(), "Nothing Here official trailer").Return(nil, nil),
	)

	got := f.srv.Resolve(context.Background(), "42", "Nothing Here", "1999")

	assert.False(t, got.Found())
	assert.Equal(t, entity.TrailerSourceNone, got.Source)
}

func TestResolve_TimedOutSearchMovesToNextVariant(t *testing.T) {
	f := newTrailerFixture(t, 20*time.Millisecond)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "27205").Return(nil)
	gomock.InOrder(
		f.search.EXPECT().Search(gomock.Any(), "Inception 2010 official trailer").
			DoAndReturn(func(ctx context.Context, _ string) ([]entity.SearchResult, error) {
				_, hasDeadline := ctx.Deadline()
				require.True(t, hasDeadline)
				<-ctx.Done()
				return nil, ctx.Err()
			}),
		f.search.EXPECT().Search(gomock.Any(), "Inception 2010 trailer").Return([]entity.SearchResult{
			{VideoID: "YoHD9XEInc0", Title: "Inception - Official Trailer", ChannelTitle: "Warner Bros. Pictures"},
		}, nil),
	)

	start := time.Now()
	got := f.srv.Resolve(context.Background(), "27205", "Inception", "2010")

	assert.Equal(t, "YoHD9XEInc0", got.Key)
	assert.Equal(t, entity.TrailerSourceSearch, got.Source)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestResolve_BlankTitleSkipsSearch(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "7").Return([]entity.Video{
		{Key: "t1", Site: "YouTube", Type: "Teaser"},
	})
	f.search.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	got := f.srv.Resolve(context.Background(), "7", "   ", "2001")

	assert.False(t, got.Found())
}

func TestResolve_BlankYearCollapsesVariants(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), "9").Return(nil)
	gomock.InOrder(
		f.search.EXPECT().Search(gomock.Any(), "Alien official trailer").Return(nil, nil),
		f.search.EXPECT().Search(gomock.Any(), "Alien trailer").Return(nil, nil),
		f.search.EXPECT().Search(gomock.Any(), "Alien teaser trailer").Return(nil, nil),
	)

	got := f.srv.Resolve(context.Background(), "9", "Alien", "")

	assert.False(t, got.Found())
}

func TestResolveFromVideos_DoesNotRefetchVideos(t *testing.T) {
	f := newTrailerFixture(t, time.Second)

	f.videos.EXPECT().FindByMovieID(gomock.Any(), gomock.Any()).Times(0)

	got := f.srv.ResolveFromVideos(context.Background(), []entity.Video{
		{Key: "abc", Site: "YouTube", Type: "Trailer"},
	}, "Anything", "2020")

	assert.Equal(t, "abc", got.Key)
	assert.Equal(t, entity.TrailerSourceTMDB, got.Source)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/utils"
	"go.uber.org/zap"
)

// Content manages announcements and the public statistics boards.
type Content struct {
	store   Storage
	policy  *access.Policy
	logger  *zap.SugaredLogger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewContent(store Storage, policy *access.Policy, logger *zap.SugaredLogger, m *metrics.Metrics) *Content {
	return &Content{store: store, policy: policy, logger: logger, metrics: m, now: time.Now}
}

func (c *Content) requireContent(s *access.Session) error {
	if !c.policy.HasRole(s, access.ContentManagers...) {
		return fmt.Errorf("%w: content management privilege required", errs.ErrForbidden)
	}
	return nil
}

func (c *Content) ListAnnouncements(ctx context.Context, s *access.Session) (model.Result[[]model.Announcement], error) {
	if err := requireSession(s); err != nil {
		return model.Result[[]model.Announcement]{}, err
	}

	list, err := c.store.ListAnnouncements(ctx)
	if err != nil {
		return degrade(c.logger, c.metrics, "announcements", []model.Announcement{}, err), nil
	}
	return model.OK(list), nil
}

func (c *Content) AddAnnouncement(ctx context.Context, s *access.Session, req model.AnnouncementRequest) (model.Announcement, error) {
	if err := c.requireContent(s); err != nil {
		return model.Announcement{}, err
	}
	if utils.IsBlank(req.Title) || utils.IsBlank(req.Content) {
		return model.Announcement{}, invalid("title and content are required")
	}

	now := c.now().UTC()
	a := model.Announcement{
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Author:      s.Identity.DisplayName,
		IsImportant: req.IsImportant,
		MediaURL:    strings.TrimSpace(req.MediaURL),
		Duration:    strings.TrimSpace(req.Duration),
	}

	saved, err := c.store.AddAnnouncement(ctx, a)
	if err != nil {
		return model.Announcement{}, fmt.Errorf("add announcement: %w", err)
	}
	return saved, nil
}

func (c *Content) DeleteAnnouncement(ctx context.Context, s *access.Session, id string) error {
	if err := c.requireContent(s); err != nil {
		return err
	}
	if err := c.store.DeleteAnnouncement(ctx, id); err != nil {
		return fmt.Errorf("delete announcement %s: %w", id, err)
	}
	return nil
}

// SeasonStats falls back to the placeholder season when nothing is stored.
func (c *Content) SeasonStats(ctx context.Context, s *access.Session) (model.Result[model.SeasonStats], error) {
	if err := requireSession(s); err != nil {
		return model.Result[model.SeasonStats]{}, err
	}

	stats, found, err := c.store.GetSeasonStats(ctx)
	if err != nil {
		return degrade(c.logger, c.metrics, "season_stats", model.PlaceholderSeason(), err), nil
	}
	if !found {
		return model.OK(model.PlaceholderSeason()), nil
	}
	return model.OK(stats), nil
}

func (c *Content) UpdateSeasonStats(ctx context.Context, s *access.Session, stats model.SeasonStats) (model.SeasonStats, error) {
	if err := c.requireContent(s); err != nil {
		return model.SeasonStats{}, err
	}

	switch {
	case utils.IsBlank(stats.SeasonName):
		return model.SeasonStats{}, invalid("season name is required")
	case stats.Played < 0 || stats.Total < 0:
		return model.SeasonStats{}, invalid("match counts must not be negative")
	case stats.Played > stats.Total:
		return model.SeasonStats{}, invalid("played %d exceeds total %d", stats.Played, stats.Total)
	}
	stats.SeasonName = strings.TrimSpace(stats.SeasonName)
	stats.StartDate = strings.TrimSpace(stats.StartDate)

	if err := c.store.PutSeasonStats(ctx, stats); err != nil {
		return model.SeasonStats{}, fmt.Errorf("put season stats: %w", err)
	}
	return stats, nil
}

// SocialStats always lists every known platform, zeroed where nothing is stored.
func (c *Content) SocialStats(ctx context.Context, s *access.Session) (model.Result[[]model.SocialStats], error) {
	if err := requireSession(s); err != nil {
		return model.Result[[]model.SocialStats]{}, err
	}

	stored, err := c.store.ListSocialStats(ctx)
	if err != nil {
		return degrade(c.logger, c.metrics, "social_stats", mergeSocial(nil), err), nil
	}
	return model.OK(mergeSocial(stored)), nil
}

func mergeSocial(stored []model.SocialStats) []model.SocialStats {
	byPlatform := make(map[string]model.SocialStats, len(stored))
	for _, st := range stored {
		byPlatform[st.Platform] = st
	}

	out := make([]model.SocialStats, 0, len(model.Platforms))
	for _, p := range model.Platforms {
		st, ok := byPlatform[p]
		if !ok {
			st = model.SocialStats{Platform: p}
		}
		out = append(out, st)
	}
	return out
}

func (c *Content) UpdateSocialStats(ctx context.Context, s *access.Session, platform string, req model.SocialStatsRequest) (model.SocialStats, error) {
	if err := c.requireContent(s); err != nil {
		return model.SocialStats{}, err
	}

	switch {
	case !model.IsValidPlatform(platform):
		return model.SocialStats{}, invalid("unknown platform %q", platform)
	case req.Followers < 0:
		return model.SocialStats{}, invalid("followers must not be negative")
	case req.EngagementRate < 0 || req.EngagementRate > 100:
		return model.SocialStats{}, invalid("engagement rate must be between 0 and 100")
	}

	st := model.SocialStats{
		Platform:       platform,
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		LastUpdated:    c.now().UTC(),
	}
	if err := c.store.UpsertSocialStats(ctx, st); err != nil {
		return model.SocialStats{}, fmt.Errorf("upsert %s stats: %w", platform, err)
	}
	return st, nil
}

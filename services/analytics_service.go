// services/analytics_service.go
package services

import (
	"errors"
	"log"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

var mobilePattern = regexp.MustCompile(`(?i)Mobile|Android|iPhone|iPad`)

// ErrInvalidEventType is returned when a beacon carries an unknown kind.
var ErrInvalidEventType = errors.New("invalid event type")

type AnalyticsService struct {
	store store.Store

	// Retention bounds: once the log exceeds EventCap the oldest events
	// are pruned down to EventTrimTo.
	EventCap    int64
	EventTrimTo int64
}

func NewAnalyticsService(s store.Store, eventCap, trimTo int64) *AnalyticsService {
	return &AnalyticsService{store: s, EventCap: eventCap, EventTrimTo: trimTo}
}

// TrackInput is a tracking beacon from the public menu page.
type TrackInput struct {
	EventType  string     `json:"event_type" binding:"required"`
	MenuID     *uuid.UUID `json:"menu_id"`
	ItemID     *uuid.UUID `json:"item_id"`
	CategoryID *uuid.UUID `json:"category_id"`
	Slug       string     `json:"slug"`
	Referrer   string     `json:"referrer"`
}

// Track appends one event. The owning user is resolved at write time so
// dashboard reads never need a join, and the mobile flag is derived from
// the user agent here rather than at query time.
func (s *AnalyticsService) Track(in TrackInput, userAgent string) error {
	if !models.IsValidEventType(in.EventType) {
		return ErrInvalidEventType
	}

	event := models.AnalyticsEvent{
		EventType:  in.EventType,
		MenuID:     in.MenuID,
		ItemID:     in.ItemID,
		CategoryID: in.CategoryID,
		Slug:       in.Slug,
		UserAgent:  userAgent,
		Referrer:   in.Referrer,
		IsMobile:   mobilePattern.MatchString(userAgent),
		Timestamp:  time.Now().UTC(),
	}

	if in.MenuID != nil {
		if menu, err := s.store.MenuByID(*in.MenuID); err == nil {
			event.UserID = &menu.UserID
		}
	}

	return s.store.InsertEvent(&event)
}

// Summary shapes returned to the dashboard.

type DailyCount struct {
	Day   string `json:"day"` // "2006-01-02"
	Views int    `json:"views"`
	Scans int    `json:"scans"`
}

type ItemCount struct {
	ItemID uuid.UUID `json:"item_id"`
	Count  int       `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type CategoryCount struct {
	CategoryID uuid.UUID `json:"category_id"`
	Count      int       `json:"count"`
}

type DeviceSplit struct {
	Mobile  int `json:"mobile"`
	Desktop int `json:"desktop"`
}

type Summary struct {
	TotalViews      int             `json:"totalViews"`
	TotalItemClicks int             `json:"totalItemClicks"`
	TotalQRScans    int             `json:"totalQRScans"`
	UniqueSessions  int             `json:"uniqueSessions"`
	DailyViews      []DailyCount    `json:"dailyViews"`
	TopItems        []ItemCount     `json:"topItems"`
	Hourly          []HourCount     `json:"hourly"`
	Devices         DeviceSplit     `json:"devices"`
	CategoryViews   []CategoryCount `json:"categoryViews"`
}

// RangeStart maps the range selector to a lower-bound timestamp.
// "all" (and anything unknown) means no bound.
func RangeStart(rng string, now time.Time) *time.Time {
	var start time.Time
	switch rng {
	case "today":
		start = utils.BeginningOfDay(now)
	case "7d":
		start = now.AddDate(0, 0, -7)
	case "30d":
		start = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	return &start
}

// Summarize aggregates the event log for the given menus and time window.
// Pure read-side fold over append-only facts; calling it twice without new
// events yields identical output.
func (s *AnalyticsService) Summarize(menuIDs []uuid.UUID, rng string) (*Summary, error) {
	summary := &Summary{
		DailyViews:    []DailyCount{},
		TopItems:      []ItemCount{},
		Hourly:        []HourCount{},
		CategoryViews: []CategoryCount{},
	}
	if len(menuIDs) == 0 {
		return summary, nil
	}

	events, err := s.store.EventsForMenus(menuIDs, RangeStart(rng, time.Now()))
	if err != nil {
		return nil, err
	}

	agents := map[string]struct{}{}
	daily := map[string]*DailyCount{}
	clicks := map[uuid.UUID]int{}
	hours := map[int]int{}
	categories := map[uuid.UUID]int{}

	for _, e := range events {
		switch e.EventType {
		case models.EventPageView:
			summary.TotalViews++
			agents[e.UserAgent] = struct{}{}
			hours[e.Timestamp.Hour()]++
			if e.IsMobile {
				summary.Devices.Mobile++
			}
			dailyFor(daily, e.Timestamp).Views++
		case models.EventItemClick:
			summary.TotalItemClicks++
			if e.ItemID != nil {
				clicks[*e.ItemID]++
			}
		case models.EventQRScan:
			summary.TotalQRScans++
			dailyFor(daily, e.Timestamp).Scans++
		case models.EventCategorySwitch:
			if e.CategoryID != nil {
				categories[*e.CategoryID]++
			}
		}
	}

	summary.UniqueSessions = len(agents)
	summary.Devices.Desktop = summary.TotalViews - summary.Devices.Mobile

	for _, d := range daily {
		summary.DailyViews = append(summary.DailyViews, *d)
	}
	sort.Slice(summary.DailyViews, func(i, j int) bool {
		return summary.DailyViews[i].Day < summary.DailyViews[j].Day
	})

	for id, count := range clicks {
		summary.TopItems = append(summary.TopItems, ItemCount{ItemID: id, Count: count})
	}
	sort.Slice(summary.TopItems, func(i, j int) bool {
		return summary.TopItems[i].Count > summary.TopItems[j].Count
	})
	if len(summary.TopItems) > 10 {
		summary.TopItems = summary.TopItems[:10]
	}

	for hour, count := range hours {
		summary.Hourly = append(summary.Hourly, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(summary.Hourly, func(i, j int) bool {
		return summary.Hourly[i].Hour < summary.Hourly[j].Hour
	})

	for id, count := range categories {
		summary.CategoryViews = append(summary.CategoryViews, CategoryCount{CategoryID: id, Count: count})
	}
	sort.Slice(summary.CategoryViews, func(i, j int) bool {
		return summary.CategoryViews[i].Count > summary.CategoryViews[j].Count
	})

	return summary, nil
}

func dailyFor(daily map[string]*DailyCount, ts time.Time) *DailyCount {
	day := ts.Format("2006-01-02")
	d, ok := daily[day]
	if !ok {
		d = &DailyCount{Day: day}
		daily[day] = d
	}
	return d
}

// PruneIfNeeded enforces the retention ceiling: when the log holds more
// than EventCap events the oldest are discarded down to EventTrimTo.
func (s *AnalyticsService) PruneIfNeeded() (int64, error) {
	if s.EventCap <= 0 {
		return 0, nil
	}
	count, err := s.store.CountEvents()
	if err != nil {
		return 0, err
	}
	if count <= s.EventCap {
		return 0, nil
	}
	return s.store.PruneOldestEvents(s.EventTrimTo)
}

// StartRetentionScheduler prunes the event log every night at 03:30.
func (s *AnalyticsService) StartRetentionScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("30 3 * * *", func() {
		pruned, err := s.PruneIfNeeded()
		if err != nil {
			log.Printf("analytics retention failed: %v", err)
			return
		}
		if pruned > 0 {
			log.Printf("analytics retention pruned %d events", pruned)
		}
	})

	c.Start()
	log.Println("Analytics retention scheduler started")
	return c
}

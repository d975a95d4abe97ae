package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"creative-hub/internal/core/domain"
	"creative-hub/internal/core/port"
)

var (
	seedHooks    = []string{"question", "problem", "challenge", "offer", "fail", "satisfying"}
	seedStyles   = []string{"ugc", "cinematic", "gameplay", "minimal", "bold"}
	seedCTAs     = []string{"Play Now", "Install", "Try It Free", "Claim Now"}
	seedColors   = []string{"blue", "orange", "purple", "green"}
	seedPacing   = []string{"fast", "medium", "slow"}
	seedNetworks = []string{"meta", "tiktok", "google", "unity", "applovin", "ironsource"}
	seedStatuses = []domain.Status{domain.StatusActive, domain.StatusPaused, domain.StatusTesting, domain.StatusArchived}
	seedFormats  = []domain.Format{domain.FormatVideo, domain.FormatBanner, domain.FormatPlayable}
)

// MockCreatives builds n demo creatives with tags, networks and metrics,
// newest first. The same seed always yields the same data apart from ids.
func MockCreatives(n int, seed int64, now time.Time) []domain.Creative {
	r := rand.New(rand.NewSource(seed))
	out := make([]domain.Creative, 0, n)
	for i := n; i >= 1; i-- {
		format := seedFormats[i%len(seedFormats)]
		id := uuid.NewString()
		created := now.Add(-time.Duration(n-i+1) * 36 * time.Hour)

		impressions := int64(5000 + r.Intn(200000))
		clicks := impressions * int64(1+r.Intn(60)) / 1000
		installs := clicks * int64(5+r.Intn(40)) / 100
		spend := float64(impressions) * (2 + r.Float64()*8) / 1000

		m := &domain.Metrics{
			Impressions: impressions,
			Clicks:      clicks,
			Installs:    installs,
			CTR:         round2(float64(clicks) / float64(impressions) * 100),
			IPM:         round2(float64(installs) / float64(impressions) * 1000),
			Spend:       round2(spend),
		}
		if installs > 0 {
			m.CPI = round2(spend / float64(installs))
		}
		if format == domain.FormatPlayable {
			d1 := round2(25 + r.Float64()*20)
			d7 := round2(d1 / 3)
			m.Retention = &domain.Retention{D1: &d1, D7: &d7}
		}

		c := domain.Creative{
			ID:     id,
			Format: format,
			Name:   fmt.Sprintf("%s %s #%d", seedHooks[i%len(seedHooks)], format, i),
			URLs: domain.URLs{
				Preview:   fmt.Sprintf("https://cdn.example.com/creatives/%s/preview", id),
				Source:    fmt.Sprintf("https://cdn.example.com/creatives/%s/source", id),
				Thumbnail: fmt.Sprintf("https://cdn.example.com/creatives/%s/thumb.jpg", id),
			},
			Tags: domain.Tags{
				Hook:            seedHooks[r.Intn(len(seedHooks))],
				Style:           seedStyles[r.Intn(len(seedStyles))],
				CTA:             seedCTAs[r.Intn(len(seedCTAs))],
				Color:           seedColors[r.Intn(len(seedColors))],
				Pacing:          seedPacing[r.Intn(len(seedPacing))],
				Language:        "en",
				HasVoiceover:    format == domain.FormatVideo && r.Intn(2) == 0,
				HasTextOverlay:  r.Intn(2) == 0,
				BrandVisibility: []domain.BrandVisibility{domain.BrandLow, domain.BrandMedium, domain.BrandHigh}[r.Intn(3)],
			},
			Version:   1 + r.Intn(3),
			Networks:  pickNetworks(r),
			Status:    seedStatuses[r.Intn(len(seedStatuses))],
			CreatedAt: created,
			UpdatedAt: created,
			Metrics:   m,
		}
		if format == domain.FormatVideo {
			c.Tags.Duration = []int{15, 30, 45}[r.Intn(3)]
		}
		out = append(out, c)
	}
	// A derived variation of the newest creative.
	if len(out) > 0 {
		v := out[0].Clone()
		v.ID = uuid.NewString()
		v.Name += " (variation)"
		v.ParentID = out[0].ID
		v.IsVariation = true
		v.Version = 1
		v.Metrics = nil
		v.Status = domain.StatusTesting
		v.CreatedAt = now
		v.UpdatedAt = now
		out = append([]domain.Creative{v}, out...)
	}
	return out
}

// Seed writes demo creatives through repo.
func Seed(ctx context.Context, repo port.CreativeRepository, n int) error {
	for _, c := range MockCreatives(n, time.Now().UnixNano(), time.Now().UTC()) {
		if err := repo.UpsertCreative(ctx, c); err != nil {
			return fmt.Errorf("seed creative %s: %w", c.ID, err)
		}
	}
	return nil
}

func pickNetworks(r *rand.Rand) []string {
	n := 1 + r.Intn(3)
	out := make([]string, 0, n)
	for _, i := range r.Perm(len(seedNetworks))[:n] {
		out = append(out, seedNetworks[i])
	}
	return out
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

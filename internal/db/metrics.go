package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// VisitorMetric is a tracked page view. The IP is only ever stored hashed.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat is the click count of a tracked document.
type LinkStat struct {
	Slug   string `json:"slug"`
	Target string `json:"target"`
	Clicks int    `json:"clicks"`
}

// Stats backs the admin dashboard.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	TotalClicks      int64            `json:"total_clicks"`
	TopLinks         []LinkStat       `json:"top_links"`
	ViewSwitches     map[string]int64 `json:"view_switches"`
	RecentVisitors   []VisitorMetric  `json:"recent_visitors"`
}

// HashIP hashes ip with salt, truncated for storage.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a page view.
func (d *DB) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path) VALUES (?, ?, ?)`,
		hashedIP, userAgent, path)
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// CleanupVisitors deletes visits older than twelve months.
func (d *DB) CleanupVisitors(ctx context.Context) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		`DELETE FROM visitors WHERE timestamp < datetime('now', '-12 months')`)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up visitors: %w", err)
	}
	return res.RowsAffected()
}

// RecordClick counts one click on a tracked document.
func (d *DB) RecordClick(ctx context.Context, slug, target string) error {
	_, err := d.sql.ExecContext(ctx, `
		INSERT INTO link_clicks (slug, target, clicks, last_click)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(slug) DO UPDATE SET
			clicks = clicks + 1,
			target = excluded.target,
			last_click = excluded.last_click`,
		slug, target)
	if err != nil {
		return fmt.Errorf("failed to record click on %s: %w", slug, err)
	}
	return nil
}

// RecordViewSwitch counts a switch into view.
func (d *DB) RecordViewSwitch(ctx context.Context, view string) error {
	_, err := d.sql.ExecContext(ctx, `
		INSERT INTO view_switches (view, switches) VALUES (?, 1)
		ON CONFLICT(view) DO UPDATE SET switches = switches + 1`,
		view)
	if err != nil {
		return fmt.Errorf("failed to record view switch: %w", err)
	}
	return nil
}

// Stats gathers the dashboard numbers.
func (d *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ViewSwitches: make(map[string]int64)}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`, &stats.VisitorsThisWeek},
		{`SELECT COALESCE(SUM(clicks), 0) FROM link_clicks`, &stats.TotalClicks},
	}
	for _, c := range counts {
		if err := d.sql.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to query stats: %w", err)
		}
	}

	rows, err := d.sql.QueryContext(ctx, `
		SELECT slug, target, clicks FROM link_clicks
		ORDER BY clicks DESC, slug ASC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("failed to query top links: %w", err)
	}
	for rows.Next() {
		var l LinkStat
		if err := rows.Scan(&l.Slug, &l.Target, &l.Clicks); err != nil {
			continue
		}
		stats.TopLinks = append(stats.TopLinks, l)
	}
	rows.Close()

	rows, err = d.sql.QueryContext(ctx, `SELECT view, switches FROM view_switches`)
	if err != nil {
		return nil, fmt.Errorf("failed to query view switches: %w", err)
	}
	for rows.Next() {
		var v string
		var n int64
		if err := rows.Scan(&v, &n); err != nil {
			continue
		}
		stats.ViewSwitches[v] = n
	}
	rows.Close()

	rows, err = d.sql.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY id DESC
		LIMIT 50`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent visitors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}

	return stats, nil
}

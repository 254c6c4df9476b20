package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout daily bucket key
const DateLayout = "2006-01-02"

// DailyStat one day of channel activity
type DailyStat struct {
	Date              string `bson:"date" json:"date"`
	Views             int64  `bson:"views" json:"views"`
	SubscribersGained int64  `bson:"subscribersGained" json:"subscribersGained"`
	SubscribersLost   int64  `bson:"subscribersLost" json:"subscribersLost"`
	Likes             int64  `bson:"likes" json:"likes"`
	Comments          int64  `bson:"comments" json:"comments"`
}

// ChannelAnalytics rollup counters plus the per-day series of a channel
type ChannelAnalytics struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Channel          primitive.ObjectID `bson:"channel" json:"channel"`
	TotalView        int64              `bson:"totalView" json:"totalView"`
	TotalSubscribers int64              `bson:"totalSubscribers" json:"totalSubscribers"`
	TotalVideos      int64              `bson:"totalVideos" json:"totalVideos"`
	TotalLikes       int64              `bson:"totalLikes" json:"totalLikes"`
	TotalComments    int64              `bson:"totalComments" json:"totalComments"`
	DailyStats       []DailyStat        `bson:"dailyStats" json:"dailyStats"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Metric deltas applied by one event, negative values undo
type Metric struct {
	Views             int64
	SubscribersGained int64
	SubscribersLost   int64
	Likes             int64
	Comments          int64
	Videos            int64
}

// IsZero nothing to record
func (m Metric) IsZero() bool {
	return m == Metric{}
}

// Totals increments of the rollup counters
func (m Metric) Totals() map[string]int64 {
	out := map[string]int64{}
	add := func(key string, v int64) {
		if v != 0 {
			out[key] = v
		}
	}
	add("totalView", m.Views)
	add("totalSubscribers", m.SubscribersGained-m.SubscribersLost)
	add("totalVideos", m.Videos)
	add("totalLikes", m.Likes)
	add("totalComments", m.Comments)
	return out
}

// Daily increments of a daily bucket, keyed by DailyStat field
func (m Metric) Daily() map[string]int64 {
	out := map[string]int64{}
	add := func(key string, v int64) {
		if v != 0 {
			out[key] = v
		}
	}
	add("views", m.Views)
	add("subscribersGained", m.SubscribersGained)
	add("subscribersLost", m.SubscribersLost)
	add("likes", m.Likes)
	add("comments", m.Comments)
	return out
}

// Bucket a fresh daily bucket holding m
func (m Metric) Bucket(date string) DailyStat {
	return DailyStat{
		Date:              date,
		Views:             m.Views,
		SubscribersGained: m.SubscribersGained,
		SubscribersLost:   m.SubscribersLost,
		Likes:             m.Likes,
		Comments:          m.Comments,
	}
}

// LastDays keep the buckets of the last n days ending at today, oldest first
func (a *ChannelAnalytics) LastDays(today time.Time, n int) []DailyStat {
	from := today.AddDate(0, 0, -(n - 1)).Format(DateLayout)
	out := make([]DailyStat, 0, n)
	for _, d := range a.DailyStats {
		if d.Date >= from {
			out = append(out, d)
		}
	}
	return out
}

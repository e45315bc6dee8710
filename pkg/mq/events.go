package mq

import "time"

const (
	VideoUploaded = "video.uploaded"
	VideoDeleted  = "video.deleted"
)

const (
	VideoEventExchange = "video_events"
	VideoEventQueue    = "video_event_queue"
)

// VideoEvent 视频生命周期事件, 由 worker 做转码探测、封面和索引
type VideoEvent struct {
	Type         string    `json:"type"`
	VideoID      string    `json:"video_id"`
	UserID       string    `json:"user_id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Timestamp    time.Time `json:"timestamp"`
}

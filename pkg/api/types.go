package api

import "time"

// Auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// User is the minimal profile the backend exposes
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post is a post in any lifecycle state. The state is derived from the
// fields, it is not stored as an enum: a post with postError is failed,
// with posted=true is posted, with a scheduledTime is scheduled, and is
// otherwise a draft.
type Post struct {
	ID            string     `json:"_id"`
	Platform      []string   `json:"platform"`
	Content       string     `json:"content"`
	Caption       string     `json:"caption,omitempty"`
	Hashtags      string     `json:"hashtags,omitempty"`
	Image         string     `json:"image,omitempty"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	Posted        bool       `json:"posted"`
	PostError     string     `json:"postError,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// GenerateRequest is the input for AI content generation
type GenerateRequest struct {
	Platform     string   `json:"platform"`
	ContentTopic string   `json:"contentTopic"`
	Keywords     []string `json:"keywords"`
	Industry     []string `json:"industry"`
	Tone         []string `json:"tone"`
}

type GenerateResponse struct {
	Post                 Post   `json:"post"`
	SuggestedPostingTime string `json:"suggestedPostingTime"`
}

// CreatePostRequest is the manual-create form; Image is a local file path
// submitted as a multipart part when set.
type CreatePostRequest struct {
	Platform      string
	Content       string
	Caption       string
	Hashtags      string
	ScheduledTime string
	Image         string
}

type UpdatePostRequest struct {
	Content       string `json:"content"`
	Caption       string `json:"caption"`
	Hashtags      string `json:"hashtags"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
}

type ScheduleRequest struct {
	ScheduledTime time.Time `json:"scheduledTime"`
	Schedule      bool      `json:"schedule"`
}

// PostMetrics is one row of the aggregate analytics feed
type PostMetrics struct {
	ID          string     `json:"_id"`
	Platform    []string   `json:"platform,omitempty"`
	Likes       int        `json:"likes"`
	Shares      int        `json:"shares"`
	Comments    int        `json:"comments"`
	Impressions int        `json:"impressions"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// SocialAccount is a linked third-party account. Only connection metadata
// is ever visible to the client, never platform credentials.
type SocialAccount struct {
	ID        string     `json:"id"`
	Platform  string     `json:"platform"`
	Username  string     `json:"username"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	DateAdded *time.Time `json:"dateAdded,omitempty"`
}

type SocialAccountCheck struct {
	Connected bool   `json:"connected"`
	Username  string `json:"username,omitempty"`
}

// Twitter-specific analytics

type TwitterPublicMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	LikeCount      int `json:"like_count"`
	RetweetCount   int `json:"retweet_count"`
	ReplyCount     int `json:"reply_count"`
}

type TwitterUser struct {
	Username      string               `json:"username"`
	PublicMetrics TwitterPublicMetrics `json:"public_metrics"`
}

type Tweet struct {
	ID            string               `json:"id"`
	Text          string               `json:"text"`
	CreatedAt     time.Time            `json:"created_at"`
	PublicMetrics TwitterPublicMetrics `json:"public_metrics"`
}

type TwitterMetricsResponse struct {
	User   TwitterUser `json:"user"`
	Tweets []Tweet     `json:"tweets"`
}

// ErrorResponse is the backend's error body
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

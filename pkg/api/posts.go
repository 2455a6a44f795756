package api

import (
	"fmt"
	"os"

	"github.com/VinothPrinzz/socialgen-cli/pkg/logger"
)

// QueuedPosts retrieves the user's queued drafts
func (c *Client) QueuedPosts() ([]Post, error) {
	posts, err := getJSON[[]Post](c, "/api/v1/posts/queue")
	if err != nil {
		return nil, err
	}
	return *posts, nil
}

// ScheduledPosts retrieves posts with a fixed posting time
func (c *Client) ScheduledPosts() ([]Post, error) {
	posts, err := getJSON[[]Post](c, "/api/v1/posts/schedule")
	if err != nil {
		return nil, err
	}
	return *posts, nil
}

// GetQueuedPost retrieves a single queued post for editing
func (c *Client) GetQueuedPost(postID string) (*Post, error) {
	return getJSON[Post](c, fmt.Sprintf("/api/v1/posts/queue/%s", postID))
}

// UpdateQueuedPost saves edited fields of a queued post
func (c *Client) UpdateQueuedPost(postID string, req UpdatePostRequest) error {
	logger.Debug("Updating post", "post_id", postID)

	resp, err := c.http.R().
		SetBody(req).
		Put(fmt.Sprintf("/api/v1/posts/queue/%s", postID))

	return CheckResponse(resp, err)
}

// QueuePost moves a generated draft into the queue with no fixed time
func (c *Client) QueuePost(postID string) error {
	logger.Debug("Queueing post", "post_id", postID)

	resp, err := c.http.R().
		SetBody(struct{}{}).
		Put(fmt.Sprintf("/api/v1/posts/queue/%s", postID))

	return CheckResponse(resp, err)
}

// SchedulePost sets the posting time of a post. The caller validates that
// the timestamp is in the future before this is reached.
func (c *Client) SchedulePost(postID string, req ScheduleRequest) error {
	logger.Debug("Scheduling post", "post_id", postID, "time", req.ScheduledTime)

	resp, err := c.http.R().
		SetBody(req).
		Put(fmt.Sprintf("/api/v1/posts/schedule/%s", postID))

	return CheckResponse(resp, err)
}

// CreatePost creates a post manually. The image, when present, is sent as
// a multipart file part; everything else rides as form fields.
func (c *Client) CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "platform", req.Platform)

	request := c.http.R().
		SetFormData(map[string]string{
			"platform":      req.Platform,
			"content":       req.Content,
			"caption":       req.Caption,
			"hashtags":      req.Hashtags,
			"scheduledTime": req.ScheduledTime,
		})

	if req.Image != "" {
		if _, err := os.Stat(req.Image); err != nil {
			return nil, fmt.Errorf("image not found: %s", req.Image)
		}
		request.SetFile("image", req.Image)
	}

	var response Post
	resp, err := request.
		SetResult(&response).
		Post("/api/v1/posts/create")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// DeletePost deletes a post in any pre-posted state
func (c *Client) DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := c.http.R().
		Delete(fmt.Sprintf("/api/v1/posts/%s", postID))

	return CheckResponse(resp, err)
}

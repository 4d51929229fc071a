package fcm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrInvalidToken classifies a provider response that means the device token
// will never work again (unregistered installation or malformed token).
// Callers are expected to prune the token when they see this.
var ErrInvalidToken = errors.New("invalid device token")

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// Notification contains the data to send in a push notification
type Notification struct {
	Title string
	Body  string
	Link  string            // URL to open when the notification is clicked
	Data  map[string]string // Custom data payload
}

// Send delivers a push notification to a single device token.
// An error wrapping ErrInvalidToken means the token is permanently dead;
// any other error is a transient provider failure.
func (c *Client) Send(ctx context.Context, token string, notification Notification) error {
	data := map[string]string{
		"title":     notification.Title,
		"body":      notification.Body,
		"url":       notification.Link,
		"timestamp": strconv.FormatInt(time.Now().UnixMilli(), 10),
	}
	for k, v := range notification.Data {
		data[k] = v
	}

	webpush := &messaging.WebpushConfig{
		Notification: &messaging.WebpushNotification{
			Title: notification.Title,
			Body:  notification.Body,
			Icon:  "/icons/icon-192x192.png",
			Badge: "/icons/badge-72x72.png",
		},
	}
	if notification.Link != "" {
		webpush.FCMOptions = &messaging.WebpushFCMOptions{
			Link: notification.Link,
		}
	}

	message := &messaging.Message{
		Token:   token,
		Data:    data,
		Webpush: webpush,
	}

	response, err := c.messagingClient.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || errorutils.IsInvalidArgument(err) {
			return fmt.Errorf("send to token %s: %w", shorten(token), ErrInvalidToken)
		}
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	log.Printf("[FCM] Message sent successfully: %s", response)
	return nil
}

func shorten(token string) string {
	if len(token) <= 20 {
		return token
	}
	return token[:20] + "..."
}

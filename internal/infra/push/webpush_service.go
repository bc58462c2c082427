// Package push provides the Web Push implementation of the PushSender interface.
package push

import (
	"context"
	"encoding/json"
	"net/http"

	"empreende/config"
	"empreende/internal/domain/entity"
	"empreende/internal/domain/service"
	"empreende/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const defaultTTLSeconds = 3600

// webPushService delivers notifications through the browser push services
// (FCM, Mozilla autopush, APNs web) using VAPID authentication.
type webPushService struct {
	subscriber      string
	vapidPublicKey  string
	vapidPrivateKey string
	ttl             int
}

// NewWebPushService is the constructor for webPushService.
func NewWebPushService(cfg *config.Config) (service.PushSender, error) {
	if cfg.WebPush == nil || cfg.WebPush.VAPIDPublicKey == "" || cfg.WebPush.VAPIDPrivateKey == "" {
		return nil, errors.New("web push VAPID keys must be provided")
	}
	if cfg.WebPush.Subscriber == "" {
		return nil, errors.New("web push subscriber contact must be provided")
	}

	ttl := cfg.WebPush.TTLSeconds
	if ttl <= 0 {
		ttl = defaultTTLSeconds
	}

	return &webPushService{
		subscriber:      cfg.WebPush.Subscriber,
		vapidPublicKey:  cfg.WebPush.VAPIDPublicKey,
		vapidPrivateKey: cfg.WebPush.VAPIDPrivateKey,
		ttl:             ttl,
	}, nil
}

// Send delivers one payload to one subscription endpoint. Responses in the
// 404/410 class are mapped to service.ErrEndpointGone so the caller revokes
// the subscription; every other failure is reported as transient.
func (s *webPushService) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal push payload")
	}

	target := &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, target, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send web push notification")
	}
	defer resp.Body.Close()

	return classifyResponse(resp.StatusCode)
}

// classifyResponse maps a push-service status code to nil, a permanent
// failure, or a transient one.
func classifyResponse(statusCode int) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return nil
	case statusCode == http.StatusNotFound || statusCode == http.StatusGone:
		return errors.Wrapf(service.ErrEndpointGone, "push service returned status %d", statusCode)
	default:
		return errors.Errorf("push service returned status %d", statusCode)
	}
}

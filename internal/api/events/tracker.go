package events

import (
	"context"
	"strconv"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/dukex/mixpanel"
	"github.com/savaki/amplitude-go"
)

type AuthenticatedTracker struct {
	userID    int
	userProps map[string]interface{}
}

func NewAuthenticatedTracker(userID int) AuthenticatedTracker {
	return AuthenticatedTracker{
		userID: userID,
	}
}

func (t AuthenticatedTracker) WithUserProps(props map[string]interface{}) AuthenticatedTracker {
	t.userProps = props
	return t
}

func (t AuthenticatedTracker) Track(ctx context.Context, eventName string, eventProps map[string]interface{}) {
	log := logutil.NewStderrLog("events")
	userID := strconv.Itoa(t.userID)

	ac := GetAmplitudeClient()
	if ac != nil {
		ev := amplitude.Event{
			UserId:          userID,
			EventType:       eventName,
			EventProperties: eventProps,
			UserProperties:  t.userProps,
		}
		if err := ac.Publish(ev); err != nil {
			log.Warnf("Can't publish %+v to amplitude: %s", ev, err)
		}
	}

	mp := GetMixpanelClient()
	if mp != nil {
		const ip = "0" // don't auto-detect
		ev := &mixpanel.Event{
			IP:         ip,
			Properties: eventProps,
		}
		if err := mp.Track(userID, eventName, ev); err != nil {
			log.Warnf("Can't publish event %s (%+v) to mixpanel: %s", eventName, ev, err)
		}
	}
}

package analytics

import "context"

type trackingPropsKeyType string

const trackingPropsKey trackingPropsKeyType = "trackingProps"

func ContextWithTrackingProps(ctx context.Context, props map[string]interface{}) context.Context {
	return context.WithValue(ctx, trackingPropsKey, props)
}

func getTrackingProps(ctx context.Context) map[string]interface{} {
	props := ctx.Value(trackingPropsKey)
	if props == nil {
		return map[string]interface{}{}
	}

	return props.(map[string]interface{})
}

// ContextWithEventPropsCollector makes a mutable props map for the event:
// processors fill it with SaveEventProp and Track sends it at the end.
func ContextWithEventPropsCollector(ctx context.Context, ev EventName) context.Context {
	return context.WithValue(ctx, ev, map[string]interface{}{})
}

func SaveEventProp(ctx context.Context, ev EventName, key string, value interface{}) {
	props := ctx.Value(ev).(map[string]interface{})
	props[key] = value
}

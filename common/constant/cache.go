package constant

import "time"

const (
	ApiKeyCacheKey     = "apikey:%s"
	OrderIntentLock    = "order_intent:%d:lock"
	UpcomingEventsPage = "events:upcoming:page:%d"
)

const (
	ApiKeyCacheDefaultTTL        = 5 * time.Minute
	OrderIntentLockDefaultTTL    = 1 * time.Minute
	UpcomingEventsPageDefaultTTL = 30 * time.Second
)

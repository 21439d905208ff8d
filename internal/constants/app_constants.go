package constants

import "time"

const (
	// Storage-related constants
	JDCacheDuration = 24 * time.Hour // JD检出技能缓存的过期时间

	// 事件与消息拓扑
	EventTypeResumeParsed    = "resume.parsed"
	ResumeEventsExchange     = "resume.events"
	ResumeEventsExchangeType = "topic"
	ResumeParsedQueue        = "resume.parsed.queue"
	ResumeParsedRoutingKey   = "resume.parsed"
)

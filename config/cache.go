package config

// Redis keys shared between the report service (writer) and the
// document service (invalidator).
const (
	ReportCacheKey = "report:system"
)

// ReportRefreshEvent is broadcast over the dashboard websocket whenever
// a document mutation makes cached statistics stale.
const ReportRefreshEvent = "report_refresh"

package report

// Service is the attendance aggregation and reporting engine. Both
// operations are pure functions of their inputs: every call recomputes the
// full result, there is no incremental update path.
type Service interface {
	// Aggregate partitions the date range into week buckets and folds the
	// classified, duration-computed records into them. An inverted range
	// yields zero buckets, not an error.
	Aggregate(req AggregateRequest) Aggregation

	// Assemble joins the aggregation with the task board and profile into
	// the report views.
	Assemble(req AssembleRequest) Views
}

package health

import "context"

// CorpusCounter reports how many documents the corpus holds.
type CorpusCounter interface {
	Len(ctx context.Context) (int, error)
}

// PolisherChecker checks answer polisher provider availability.
type PolisherChecker interface {
	HealthCheck(ctx context.Context) error
}

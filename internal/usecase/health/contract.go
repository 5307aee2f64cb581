package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ChartSource exposes the last rendered chart.
type ChartSource interface {
	Last() ([]byte, bool)
}

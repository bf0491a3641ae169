package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "tasks_total",
		Help:      "Count of pipeline task runs, retries included.",
	}, []string{"chain", "task", "status"})

	pipelineTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "task_duration_seconds",
		Help:      "Duration of pipeline tasks, retry waits included.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 4, 10), // 0.1s..~7h
	}, []string{"chain", "task", "status"})

	pipelineOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "operations_total",
		Help:      "Count of pipeline runs by the state they ended in.",
	}, []string{"chain", "state"})

	pipelineOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "operation_duration_seconds",
		Help:      "Duration of pipeline runs by the state they ended in.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1s..~3d
	}, []string{"chain", "state"})
)

// Pipeline tracks task and operation outcomes of the mining pipelines.
type Pipeline struct{}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func (m Pipeline) ObserveTask(chain, task string, err error, started time.Time) {
	chain = orUnknown(chain)
	s := status(err)
	pipelineTasksTotal.WithLabelValues(chain, task, s).Inc()
	pipelineTaskDuration.WithLabelValues(chain, task, s).Observe(time.Since(started).Seconds())
}

func (m Pipeline) ObserveOperation(chain, state string, started time.Time) {
	chain = orUnknown(chain)
	pipelineOperationsTotal.WithLabelValues(chain, state).Inc()
	pipelineOperationDuration.WithLabelValues(chain, state).Observe(time.Since(started).Seconds())
}

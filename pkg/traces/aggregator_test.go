package traces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oplens/oplens/pkg/cache"
	"github.com/oplens/oplens/pkg/cloudwatch"
	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

var errBackendDown = errors.New("throttled")

func newTestAggregator(t *testing.T) (*Aggregator, *cloudwatch.MockMetricSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	source := cloudwatch.NewMockMetricSource(ctrl)
	c := cache.NewTwoTier(nil, logger.NewTestLogger())

	return NewAggregator(source, c, models.TraceCacheConfig{}, logger.NewTestLogger()), source
}

// scalarsByEndpoint wires GetScalar to per-endpoint latency/request/error
// values and counts the number of calls.
func scalarsByEndpoint(source *cloudwatch.MockMetricSource, values map[string][3]float64, times int) {
	source.EXPECT().GetScalar(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *models.MetricQuery) (float64, error) {
			v, ok := values[q.DimensionValue]
			if !ok {
				return 0, nil
			}

			switch q.MetricName {
			case metricLatency:
				return v[0], nil
			case metricRequestCount:
				return v[1], nil
			case metricError:
				return v[2], nil
			default:
				return 0, nil
			}
		}).Times(times)
}

func TestGetTraces_SecondCallServedFromCache(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return([]string{"list-items"}, nil).Times(1)
	scalarsByEndpoint(source, map[string][3]float64{
		"list-items": {120, 40, 0},
	}, 3)

	first, err := agg.GetTracesJSON(ctx, "DemoApp", 60)
	require.NoError(t, err)

	// The second call inside the TTL hits the cache; the mock would fail the
	// test if the metric source were invoked again.
	second, err := agg.GetTracesJSON(ctx, "DemoApp", 60)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestGetTraces_ZeroRequestEndpointsDropped(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return([]string{"list-items", "delete-session"}, nil)
	scalarsByEndpoint(source, map[string][3]float64{
		"list-items":     {80, 10, 0},
		"delete-session": {40, 0, 0},
	}, 6)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	require.Len(t, payload.Traces, 1)
	assert.Equal(t, "list-items", payload.Traces[0].Endpoint)
}

func TestGetTraces_RankedByDescendingDuration(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return(
		[]string{"list-items", "create-share", "verify-mfa"}, nil)
	scalarsByEndpoint(source, map[string][3]float64{
		"list-items":   {50, 5, 0},
		"create-share": {200, 5, 0},
		"verify-mfa":   {10, 5, 0},
	}, 9)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	require.Len(t, payload.Traces, 3)

	durations := []int64{payload.Traces[0].Duration, payload.Traces[1].Duration, payload.Traces[2].Duration}
	assert.Equal(t, []int64{200, 50, 10}, durations)
}

func TestGetTraces_QueryFailuresDegradeToDefaults(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return([]string{"unlock"}, nil)
	source.EXPECT().GetScalar(gomock.Any(), gomock.Any()).Return(0.0, errBackendDown).Times(3)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	require.Len(t, payload.Traces, 1)

	// Latency falls back to 100, request count to 1, errors to 0.
	record := payload.Traces[0]
	assert.Equal(t, int64(100), record.Duration)
	assert.Equal(t, models.TraceStatusSuccess, record.Status)
}

func TestGetTraces_ErrorCountMarksStatus(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return([]string{"unlock", "list-items"}, nil)
	scalarsByEndpoint(source, map[string][3]float64{
		"unlock":     {90, 30, 2},
		"list-items": {30, 30, 0},
	}, 6)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	require.Len(t, payload.Traces, 2)

	byEndpoint := make(map[string]models.TraceRecord)
	for _, r := range payload.Traces {
		byEndpoint[r.Endpoint] = r
	}

	assert.Equal(t, models.TraceStatusError, byEndpoint["unlock"].Status)
	assert.Equal(t, models.TraceStatusSuccess, byEndpoint["list-items"].Status)
}

func TestGetTraces_EndpointFanOutCapped(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	endpoints := make([]string, 0, 20)
	values := make(map[string][3]float64, 20)

	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("endpoint-%02d", i)
		endpoints = append(endpoints, name)
		values[name] = [3]float64{50, 10, 0}
	}

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return(endpoints, nil)
	// Only the first 15 endpoints are queried: 15 * 3 calls.
	scalarsByEndpoint(source, values, 45)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	assert.Len(t, payload.Traces, 15)
}

func TestGetTraces_ListFailureYieldsEmptyPayload(t *testing.T) {
	agg, source := newTestAggregator(t)
	ctx := context.Background()

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return(nil, errBackendDown)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	assert.Empty(t, payload.Traces)
	assert.Equal(t, "DemoApp", payload.Namespace)
}

func TestGetTraces_UndecodableCachedPayloadRecomputed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cloudwatch.NewMockMetricSource(ctrl)
	c := cache.NewTwoTier(nil, logger.NewTestLogger())
	agg := NewAggregator(source, c, models.TraceCacheConfig{}, logger.NewTestLogger())
	ctx := context.Background()

	c.Set(ctx, cacheKey("DemoApp"), []byte("not json"), agg.ttl)

	source.EXPECT().ListEndpoints(ctx, "DemoApp").Return([]string{"list-items"}, nil)
	scalarsByEndpoint(source, map[string][3]float64{"list-items": {70, 3, 0}}, 3)

	payload, err := agg.GetTraces(ctx, "DemoApp", 60)
	require.NoError(t, err)
	require.Len(t, payload.Traces, 1)

	// The recomputed payload replaced the corrupt entry.
	data, ok := c.Get(ctx, cacheKey("DemoApp"))
	require.True(t, ok)

	var cached models.TracePayload
	require.NoError(t, json.Unmarshal(data, &cached))
	assert.Len(t, cached.Traces, 1)
}

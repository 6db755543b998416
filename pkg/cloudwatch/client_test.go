package cloudwatch

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

func testQuery(metric, stat string) *models.MetricQuery {
	now := time.Now()

	return &models.MetricQuery{
		Namespace:      "DemoApp",
		MetricName:     metric,
		DimensionValue: "/api/v1/items/get",
		Stat:           stat,
		Start:          now.Add(-5 * time.Minute),
		End:            now,
		PeriodSeconds:  60,
	}
}

func TestDimensionFor(t *testing.T) {
	tests := []struct {
		metric   string
		expected string
	}{
		{"DatabaseConnections", "Resource"},
		{"CacheHitRate", "Resource"},
		{"VaultUnlockDuration", "Operation"},
		{"SyncDuration", "Operation"},
		{"LatencyMs", "Endpoint"},
		{"RequestCount", "Endpoint"},
		{"Error", "Endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			assert.Equal(t, tt.expected, DimensionFor(tt.metric))
		})
	}
}

func TestGetScalar_SumsAllDatapoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAPI(ctrl)
	api.EXPECT().GetMetricData(gomock.Any(), gomock.Any()).Return(&cloudwatch.GetMetricDataOutput{
		MetricDataResults: []types.MetricDataResult{
			{Values: []float64{10, 20, 12}},
		},
	}, nil)

	source := NewSourceWithAPI(api, logger.NewTestLogger())

	value, err := source.GetScalar(context.Background(), testQuery("RequestCount", "Sum"))
	require.NoError(t, err)
	assert.InDelta(t, 42.0, value, 0.001)
}

func TestGetScalar_PercentileTakesLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAPI(ctrl)
	api.EXPECT().GetMetricData(gomock.Any(), gomock.Any()).Return(&cloudwatch.GetMetricDataOutput{
		MetricDataResults: []types.MetricDataResult{
			{Values: []float64{110, 95, 120}},
		},
	}, nil)

	source := NewSourceWithAPI(api, logger.NewTestLogger())

	value, err := source.GetScalar(context.Background(), testQuery("LatencyMs", "p95"))
	require.NoError(t, err)
	assert.InDelta(t, 120.0, value, 0.001)
}

func TestGetScalar_NoDatapointsDefaultsToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAPI(ctrl)
	api.EXPECT().GetMetricData(gomock.Any(), gomock.Any()).Return(&cloudwatch.GetMetricDataOutput{}, nil)

	source := NewSourceWithAPI(api, logger.NewTestLogger())

	value, err := source.GetScalar(context.Background(), testQuery("UnknownMetric", "Sum"))
	require.NoError(t, err)
	assert.Zero(t, value)
}

func TestGetTimeSeries_SortsAscending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Datapoints deliberately out of order.
	api := NewMockAPI(ctrl)
	api.EXPECT().GetMetricData(gomock.Any(), gomock.Any()).Return(&cloudwatch.GetMetricDataOutput{
		MetricDataResults: []types.MetricDataResult{
			{
				Timestamps: []time.Time{base.Add(2 * time.Minute), base, base.Add(time.Minute)},
				Values:     []float64{30, 10, 20},
			},
		},
	}, nil)

	source := NewSourceWithAPI(api, logger.NewTestLogger())

	samples, err := source.GetTimeSeries(context.Background(), testQuery("LatencyMs", "Average"))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, base.UnixMilli(), samples[0].Timestamp)
	assert.InDelta(t, 10.0, samples[0].Value, 0.001)
	assert.Equal(t, base.Add(2*time.Minute).UnixMilli(), samples[2].Timestamp)

	for i := 1; i < len(samples); i++ {
		assert.Less(t, samples[i-1].Timestamp, samples[i].Timestamp)
	}
}

func TestListEndpoints_DeduplicatesDimensionValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metric := func(endpoint string) types.Metric {
		return types.Metric{
			Dimensions: []types.Dimension{
				{Name: aws.String("Endpoint"), Value: aws.String(endpoint)},
			},
		}
	}

	api := NewMockAPI(ctrl)
	api.EXPECT().ListMetrics(gomock.Any(), gomock.Any()).Return(&cloudwatch.ListMetricsOutput{
		Metrics: []types.Metric{
			metric("/api/v1/items/get"),
			metric("/api/v1/items/list"),
			metric("/api/v1/items/get"),
			{Dimensions: []types.Dimension{{Name: aws.String("Region"), Value: aws.String("us-east-1")}}},
		},
	}, nil)

	source := NewSourceWithAPI(api, logger.NewTestLogger())

	endpoints, err := source.ListEndpoints(context.Background(), "DemoApp")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/api/v1/items/get", "/api/v1/items/list"}, endpoints)
}

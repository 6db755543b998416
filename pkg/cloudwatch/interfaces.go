/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination=mock_cloudwatch.go -package=cloudwatch github.com/oplens/oplens/pkg/cloudwatch MetricSource,API

package cloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"

	"github.com/oplens/oplens/pkg/models"
)

// MetricSource is the uniform query interface over the external telemetry
// backend. Unknown metrics yield zero values, not errors, so one missing
// metric never fails a whole aggregation.
type MetricSource interface {
	// GetScalar resolves the query to a single value. Sum-style stats are
	// summed over the window; percentile stats take the latest datapoint.
	GetScalar(ctx context.Context, q *models.MetricQuery) (float64, error)

	// GetTimeSeries returns the datapoints for the query sorted ascending
	// by timestamp. The backend may return them unordered; the adapter owns
	// the ordering invariant.
	GetTimeSeries(ctx context.Context, q *models.MetricQuery) ([]models.MetricSample, error)

	// ListEndpoints returns the distinct endpoint identifiers reporting
	// request counts under the namespace.
	ListEndpoints(ctx context.Context, namespace string) ([]string, error)
}

// API is the subset of the CloudWatch client the adapter depends on.
type API interface {
	GetMetricData(ctx context.Context, params *cloudwatch.GetMetricDataInput,
		optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricDataOutput, error)
	ListMetrics(ctx context.Context, params *cloudwatch.ListMetricsInput,
		optFns ...func(*cloudwatch.Options)) (*cloudwatch.ListMetricsOutput, error)
}

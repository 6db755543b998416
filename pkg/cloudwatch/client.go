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

// Package cloudwatch adapts the CloudWatch API to the MetricSource interface
// consumed by the trace aggregator and the dashboard endpoints.
package cloudwatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/oplens/oplens/pkg/logger"
	"github.com/oplens/oplens/pkg/models"
)

const (
	metricRequestCount = "RequestCount"
	defaultPeriod      = int32(60)
	statSum            = "Sum"
)

// Source implements MetricSource over the CloudWatch GetMetricData and
// ListMetrics operations.
type Source struct {
	api    API
	logger logger.Logger
}

// NewSource loads the default AWS configuration and returns a Source.
func NewSource(ctx context.Context, cfg models.CloudWatchConfig, log logger.Logger) (*Source, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Source{
		api:    cloudwatch.NewFromConfig(awsCfg),
		logger: log,
	}, nil
}

// NewSourceWithAPI wires an existing client, used by tests.
func NewSourceWithAPI(api API, log logger.Logger) *Source {
	return &Source{api: api, logger: log}
}

func (s *Source) GetScalar(ctx context.Context, q *models.MetricQuery) (float64, error) {
	result, err := s.getMetricData(ctx, q, "scalar")
	if err != nil {
		return 0, err
	}

	if result == nil || len(result.Values) == 0 {
		return 0, nil
	}

	if q.Stat == statSum {
		var sum float64
		for _, v := range result.Values {
			sum += v
		}

		return sum, nil
	}

	// Percentile and average stats take the most recent datapoint.
	return result.Values[len(result.Values)-1], nil
}

func (s *Source) GetTimeSeries(ctx context.Context, q *models.MetricQuery) ([]models.MetricSample, error) {
	result, err := s.getMetricData(ctx, q, "series")
	if err != nil {
		return nil, err
	}

	if result == nil {
		return []models.MetricSample{}, nil
	}

	samples := make([]models.MetricSample, 0, len(result.Values))

	for i, v := range result.Values {
		if i >= len(result.Timestamps) {
			break
		}

		samples = append(samples, models.MetricSample{
			Timestamp: result.Timestamps[i].UnixMilli(),
			Value:     v,
		})
	}

	// CloudWatch may return datapoints unordered.
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp < samples[j].Timestamp
	})

	return samples, nil
}

func (s *Source) ListEndpoints(ctx context.Context, namespace string) ([]string, error) {
	resp, err := s.api.ListMetrics(ctx, &cloudwatch.ListMetricsInput{
		Namespace:  aws.String(namespace),
		MetricName: aws.String(metricRequestCount),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics for namespace %s: %w", namespace, err)
	}

	seen := make(map[string]struct{})
	endpoints := make([]string, 0, len(resp.Metrics))

	for _, metric := range resp.Metrics {
		for _, dim := range metric.Dimensions {
			if aws.ToString(dim.Name) != dimensionEndpoint {
				continue
			}

			value := aws.ToString(dim.Value)
			if value == "" {
				continue
			}

			if _, ok := seen[value]; ok {
				continue
			}

			seen[value] = struct{}{}
			endpoints = append(endpoints, value)
		}
	}

	return endpoints, nil
}

func (s *Source) getMetricData(ctx context.Context, q *models.MetricQuery, id string) (*types.MetricDataResult, error) {
	dimensionName := q.DimensionName
	if dimensionName == "" {
		dimensionName = DimensionFor(q.MetricName)
	}

	period := q.PeriodSeconds
	if period == 0 {
		period = defaultPeriod
	}

	query := types.MetricDataQuery{
		Id: aws.String(id),
		MetricStat: &types.MetricStat{
			Metric: &types.Metric{
				Namespace:  aws.String(q.Namespace),
				MetricName: aws.String(q.MetricName),
				Dimensions: []types.Dimension{
					{
						Name:  aws.String(dimensionName),
						Value: aws.String(q.DimensionValue),
					},
				},
			},
			Period: aws.Int32(period),
			Stat:   aws.String(q.Stat),
		},
		ReturnData: aws.Bool(true),
	}

	resp, err := s.api.GetMetricData(ctx, &cloudwatch.GetMetricDataInput{
		StartTime:         aws.Time(q.Start),
		EndTime:           aws.Time(q.End),
		MetricDataQueries: []types.MetricDataQuery{query},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get metric data for %s/%s: %w", q.Namespace, q.MetricName, err)
	}

	if len(resp.MetricDataResults) == 0 {
		return nil, nil
	}

	return &resp.MetricDataResults[0], nil
}

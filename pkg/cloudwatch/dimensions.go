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

package cloudwatch

const (
	dimensionEndpoint  = "Endpoint"
	dimensionResource  = "Resource"
	dimensionOperation = "Operation"
)

// dimensionRule maps metric names to the dimension they are reported under.
// Rules are evaluated top to bottom, first match wins; metrics matching no
// rule fall back to the Endpoint dimension.
type dimensionRule struct {
	metrics   []string
	dimension string
}

var dimensionRules = []dimensionRule{
	{
		metrics:   []string{"DatabaseConnections", "CacheHitRate"},
		dimension: dimensionResource,
	},
	{
		metrics: []string{
			"VaultUnlockDuration",
			"ItemRetrievalDuration",
			"SyncDuration",
			"AuthDuration",
			"DatabaseQueryDuration",
		},
		dimension: dimensionOperation,
	},
}

// DimensionFor resolves the dimension name a metric is reported under.
func DimensionFor(metricName string) string {
	for _, rule := range dimensionRules {
		for _, m := range rule.metrics {
			if m == metricName {
				return rule.dimension
			}
		}
	}

	return dimensionEndpoint
}

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

package traces

import "strings"

// Synthesis policy lives in ordered rule tables evaluated top to bottom,
// first match wins. Keeping the policy as data makes it testable without
// running the aggregator.

type methodRule struct {
	keyword string
	method  string
}

var methodRules = []methodRule{
	{keyword: "get", method: "GET"},
	{keyword: "list", method: "GET"},
	{keyword: "search", method: "GET"},
	{keyword: "verify", method: "GET"},
	{keyword: "activity", method: "GET"},
	{keyword: "update", method: "PUT"},
	{keyword: "delete", method: "DELETE"},
}

const defaultMethod = "POST"

// inferMethod derives the HTTP method from keywords in the endpoint name.
func inferMethod(endpoint string) string {
	for _, rule := range methodRules {
		if strings.Contains(endpoint, rule.keyword) {
			return rule.method
		}
	}

	return defaultMethod
}

type spanRule struct {
	keywords []string
	base     int
	divisor  int64
}

var spanRules = []spanRule{
	{keywords: []string{"share", "create"}, base: 8, divisor: 30},
	{keywords: []string{"update"}, base: 7, divisor: 40},
}

var defaultSpanRule = spanRule{base: 4, divisor: 50}

// estimateSpans approximates the span count of a trace from the endpoint's
// complexity tier and its duration.
func estimateSpans(endpoint string, durationMs int64) int {
	rule := defaultSpanRule

	for _, r := range spanRules {
		matched := false

		for _, kw := range r.keywords {
			if strings.Contains(endpoint, kw) {
				matched = true
				break
			}
		}

		if matched {
			rule = r
			break
		}
	}

	return rule.base + int(durationMs/rule.divisor)
}

/*
 * Copyright 2025 tomoncle.
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

package model

// Well-known order statuses. The orders.status column accepts any string;
// these are the values the business actually uses and the seeder picks from.
const (
	OrderStatusProcessed = "processed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
)

// KnownOrderStatuses returns the statuses in lifecycle order.
func KnownOrderStatuses() []string {
	return []string{OrderStatusProcessed, OrderStatusShipping, OrderStatusDelivered}
}

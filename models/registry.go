/*
 * Copyright 2025 AlexeyGordiychenko.
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

package models

import "github.com/AlexeyGordiychenko/shopapi/database"

// Priorities order table creation so referenced tables come first.
func init() {
	database.RegisteredModel(database.NewModelAdapter((*Product)(nil), 1))
	database.RegisteredModel(database.NewModelAdapter((*Order)(nil), 2))
	database.RegisteredModel(database.NewModelAdapter((*OrderItem)(nil), 3))
}

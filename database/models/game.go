// Copyright 2026 SirbennyAngel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

import "errors"

var ErrGameNotFound = errors.New("game not found")

// Game describes a registered game platform. The developer principal is
// fixed at registration and never reassigned.
type Game struct {
	ID           uint   `gorm:"primaryKey"`
	GameID       string `gorm:"uniqueIndex;size:64"`
	Name         string `gorm:"size:64"`
	Developer    string `gorm:"index;size:128"`
	WebsiteURL   string `gorm:"size:256"`
	Description  string `gorm:"size:256"`
	RegisteredAt uint64
	Active       bool
}

func (Game) TableName() string {
	return "game"
}

// DeveloperGame is one entry in a developer's ordered game index. Entries
// are append-only; Position preserves insertion order.
type DeveloperGame struct {
	ID        uint   `gorm:"primaryKey"`
	Developer string `gorm:"index:idx_developer_game,unique;size:128"`
	GameID    string `gorm:"index:idx_developer_game,unique;size:64"`
	Position  uint
}

func (DeveloperGame) TableName() string {
	return "developer_game"
}

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

var ErrConversionRuleNotFound = errors.New("conversion rule not found")

// ConversionRule is a directed edge describing how an asset's
// representation translates from its origin game to a target game. The
// source game is always the asset's origin game.
type ConversionRule struct {
	ID            uint   `gorm:"primaryKey"`
	NftID         string `gorm:"index:idx_conversion_rule,unique;size:64"`
	SourceGameID  string `gorm:"index:idx_conversion_rule,unique;size:64"`
	TargetGameID  string `gorm:"index:idx_conversion_rule,unique;size:64"`
	DisplayName   string `gorm:"size:64"`
	AssetURL      string `gorm:"size:256"`
	Properties    string `gorm:"size:256"`
	CreatedBy     string `gorm:"size:128"`
	CreatedAt     uint64
	LastUpdatedAt uint64
}

func (ConversionRule) TableName() string {
	return "conversion_rule"
}

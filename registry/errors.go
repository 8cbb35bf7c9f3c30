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

package registry

import (
	"errors"
)

// Business-rule errors returned by mutating operations. Every mutating call
// either fully succeeds or returns exactly one of these (or a not-found
// error from the models package) with no partial writes.
var (
	ErrNotAuthorized              = errors.New("caller is not authorized")
	ErrGameAlreadyExists          = errors.New("game already exists")
	ErrNftAlreadyExists           = errors.New("NFT already exists")
	ErrTraitCategoryAlreadyExists = errors.New("trait category already exists")
	ErrCapabilityAlreadyExists    = errors.New("capability already exists")
	ErrConversionRuleExists       = errors.New("conversion rule already exists")
	ErrInvalidRoyaltyPercentage   = errors.New(
		"royalty percentage exceeds maximum",
	)
	ErrInvalidParameters  = errors.New("invalid parameters")
	ErrDeveloperGameLimit = errors.New("developer game capacity exceeded")
)

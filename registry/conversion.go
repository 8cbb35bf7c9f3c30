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

	"github.com/SirbennyAngel/save-web3/database"
	"github.com/SirbennyAngel/save-web3/database/models"
)

// CreateConversionRule records how an NFT's representation maps from its
// origin game to a target game. The source game is always derived from
// the asset record, never supplied by the caller, so a spoofed source
// edge can't be created. Duplicate triples fail rather than upsert.
func (s *State) CreateConversionRule(
	principal, nftId, targetGameId, displayName, assetUrl, properties string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || !validId(targetGameId) ||
		!validText(displayName) || !validText(assetUrl) ||
		!validText(properties) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		nft, err := s.db.GetNft(nftId, txn)
		if err != nil {
			return err
		}
		if _, err := s.db.GetGame(targetGameId, txn); err != nil {
			return err
		}
		authorized, err := s.isAuthorizedForConversion(
			principal,
			nftId,
			targetGameId,
			txn,
		)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		sourceGameId := nft.OriginGameID
		_, err = s.db.GetConversionRule(nftId, sourceGameId, targetGameId, txn)
		if err == nil {
			return ErrConversionRuleExists
		}
		if !errors.Is(err, models.ErrConversionRuleNotFound) {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		if err := s.db.SetConversionRule(
			&models.ConversionRule{
				NftID:         nftId,
				SourceGameID:  sourceGameId,
				TargetGameID:  targetGameId,
				DisplayName:   displayName,
				AssetURL:      assetUrl,
				Properties:    properties,
				CreatedBy:     principal,
				CreatedAt:     ordinal,
				LastUpdatedAt: ordinal,
			},
			txn,
		); err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"createConversionRule",
			principal,
			nftId+"/"+sourceGameId+"/"+targetGameId,
		)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.metrics.conversionRuleCreates.Inc()
	return s.opErr(nil)
}

// UpdateConversionRule overwrites a rule's display fields and refreshes
// its last-updated ordinal. Creation metadata is preserved.
func (s *State) UpdateConversionRule(
	principal, nftId, targetGameId, displayName, assetUrl, properties string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || !validId(targetGameId) ||
		!validText(displayName) || !validText(assetUrl) ||
		!validText(properties) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		nft, err := s.db.GetNft(nftId, txn)
		if err != nil {
			return err
		}
		rule, err := s.db.GetConversionRule(
			nftId,
			nft.OriginGameID,
			targetGameId,
			txn,
		)
		if err != nil {
			return err
		}
		authorized, err := s.isAuthorizedForConversion(
			principal,
			nftId,
			targetGameId,
			txn,
		)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		rule.DisplayName = displayName
		rule.AssetURL = assetUrl
		rule.Properties = properties
		rule.LastUpdatedAt = ordinal
		if err := s.db.SetConversionRule(rule, txn); err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"updateConversionRule",
			principal,
			nftId+"/"+rule.SourceGameID+"/"+targetGameId,
		)
	})
	return s.opErr(err)
}

// DeleteConversionRule removes a rule entirely. Authorization is
// recomputed from the caller-supplied source and target game ids rather
// than re-derived from the asset record, matching the creation-side rule
// shape applied to the named triple.
func (s *State) DeleteConversionRule(
	principal, nftId, sourceGameId, targetGameId string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || !validId(sourceGameId) ||
		!validId(targetGameId) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		rule, err := s.db.GetConversionRule(
			nftId,
			sourceGameId,
			targetGameId,
			txn,
		)
		if err != nil {
			return err
		}
		authorized, err := s.isAuthorizedForConversion(
			principal,
			nftId,
			targetGameId,
			txn,
		)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		if err := s.db.DeleteConversionRule(rule, txn); err != nil {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"deleteConversionRule",
			principal,
			nftId+"/"+sourceGameId+"/"+targetGameId,
		)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.metrics.conversionRuleDeletes.Inc()
	return s.opErr(nil)
}

// GetConversionRule returns the rule for an NFT between a source and
// target game
func (s *State) GetConversionRule(
	nftId, sourceGameId, targetGameId string,
) (*models.ConversionRule, error) {
	return s.db.GetConversionRule(nftId, sourceGameId, targetGameId, nil)
}

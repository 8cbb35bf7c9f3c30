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

// RegisterCapability adds an entry to the global capability vocabulary.
// Owner-only.
func (s *State) RegisterCapability(
	principal, capabilityId, name, description string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(capabilityId) || name == "" ||
		!validText(name) || !validText(description) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		isOwner, err := s.IsRegistryOwner(principal, txn)
		if err != nil {
			return err
		}
		if !isOwner {
			return ErrNotAuthorized
		}
		_, err = s.db.GetCapability(capabilityId, txn)
		if err == nil {
			return ErrCapabilityAlreadyExists
		}
		if !errors.Is(err, models.ErrCapabilityNotFound) {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		if err := s.db.SetCapability(
			&models.Capability{
				CapabilityID: capabilityId,
				Name:         name,
				Description:  description,
				CreatedBy:    principal,
				CreatedAt:    ordinal,
			},
			txn,
		); err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"registerCapability",
			principal,
			capabilityId,
		)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.metrics.capabilities.Inc()
	return s.opErr(nil)
}

// SetNftCapability assigns a capability state to an NFT. The state is
// overwritten unconditionally.
func (s *State) SetNftCapability(
	principal, nftId, capabilityId string,
	enabled bool,
	properties string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || !validId(capabilityId) ||
		!validText(properties) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		if _, err := s.db.GetNft(nftId, txn); err != nil {
			return err
		}
		if _, err := s.db.GetCapability(capabilityId, txn); err != nil {
			return err
		}
		authorized, err := s.IsAuthorizedForAsset(principal, nftId, txn)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		if err := s.db.SetNftCapability(
			&models.NftCapability{
				NftID:        nftId,
				CapabilityID: capabilityId,
				Enabled:      enabled,
				Properties:   properties,
			},
			txn,
		); err != nil {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"setNftCapability",
			principal,
			nftId+"/"+capabilityId,
		)
	})
	return s.opErr(err)
}

// GetCapability returns a capability by its identifier
func (s *State) GetCapability(
	capabilityId string,
) (*models.Capability, error) {
	return s.db.GetCapability(capabilityId, nil)
}

// GetNftCapability returns an NFT's state for a capability
func (s *State) GetNftCapability(
	nftId, capabilityId string,
) (*models.NftCapability, error) {
	return s.db.GetNftCapability(nftId, capabilityId, nil)
}

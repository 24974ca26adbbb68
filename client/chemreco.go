package client

import (
	"context"

	"farmguru/models"
)

// ChemReco requests conservative treatment guidance for a crop symptom.
func (c *Client) ChemReco(ctx context.Context, req models.ChemRecoRequest) (*models.ChemRecoResponse, error) {
	var out models.ChemRecoResponse
	if err := c.postJSON(ctx, "/api/chem-reco", req, msgChemRecoFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SupportedCrops lists the crops the recommendation engine knows about.
func (c *Client) SupportedCrops(ctx context.Context) (*models.CropList, error) {
	var out models.CropList
	if err := c.getJSON(ctx, "/api/chem-reco/crops", nil, msgCropsFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommonSymptoms lists common symptoms grouped by plant part.
func (c *Client) CommonSymptoms(ctx context.Context) (*models.SymptomList, error) {
	var out models.SymptomList
	if err := c.getJSON(ctx, "/api/chem-reco/symptoms", nil, msgSymptomsFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ensemble-backend/internal/config"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/logger"
)

// CentralAPIClient fetches application ownership metadata from the Central
// API, the external system of record. Consumed read-only.
type CentralAPIClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewCentralAPIClient creates a new Central API client
func NewCentralAPIClient(cfg *config.Config) *CentralAPIClient {
	timeout := time.Duration(cfg.CentralAPITimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &CentralAPIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CentralRole is one ownership contact as returned by the Central API
type CentralRole struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Band  string `json:"band"`
}

// CentralApplication is the mapped subset of the Central API response that
// the application service consumes
type CentralApplication struct {
	Name            string
	AssetID         string
	LifeCycleStatus string
	Tier            string
	Roles           map[string]CentralRole
}

// centralAPIResponse mirrors the Central API wire shape:
// {data:{application:{name, assetId, lifeCycleStatus, risk.bia, ownershipInfo.{...}}}}
type centralAPIResponse struct {
	Data struct {
		Application struct {
			Name            string `json:"name"`
			AssetID         string `json:"assetId"`
			LifeCycleStatus string `json:"lifeCycleStatus"`
			Risk            struct {
				BIA string `json:"bia"`
			} `json:"risk"`
			OwnershipInfo map[string]CentralRole `json:"ownershipInfo"`
		} `json:"application"`
	} `json:"data"`
}

// FetchApplication retrieves and maps one application's metadata by asset id.
// Network failures and malformed responses are returned as ExternalError so
// callers can record the sync outcome without retrying.
func (c *CentralAPIClient) FetchApplication(ctx context.Context, assetID string) (*CentralApplication, error) {
	if c.cfg.CentralAPIBaseURL == "" {
		return nil, apperrors.NewExternalError("central api", "CENTRAL_API_BASE_URL not configured")
	}
	if strings.TrimSpace(assetID) == "" {
		return nil, apperrors.NewValidationError("asset_id", "asset id is required")
	}

	log := logger.WithContext(ctx).WithField("asset_id", assetID)
	log.Debug("Fetching application from Central API")

	base := strings.TrimRight(c.cfg.CentralAPIBaseURL, "/")
	values := url.Values{}
	values.Set("assetId", assetID)
	endpoint := base + "/api/central?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewExternalError("central api", err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.CentralAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.CentralAPIToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("central api", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError("central api asset")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warnf("Central API returned status %d", resp.StatusCode)
		return nil, apperrors.NewExternalError("central api",
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload centralAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("central api", "malformed response: "+err.Error())
	}

	app := payload.Data.Application
	if app.Name == "" || app.AssetID == "" {
		return nil, apperrors.NewExternalError("central api", "response missing application name or assetId")
	}

	return &CentralApplication{
		Name:            app.Name,
		AssetID:         app.AssetID,
		LifeCycleStatus: app.LifeCycleStatus,
		Tier:            app.Risk.BIA,
		Roles:           app.OwnershipInfo,
	}, nil
}

package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ensemble-backend/internal/config"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

type CentralAPIClientTestSuite struct {
	suite.Suite
}

func (suite *CentralAPIClientTestSuite) newClient(baseURL string) *service.CentralAPIClient {
	return service.NewCentralAPIClient(&config.Config{
		CentralAPIBaseURL:    baseURL,
		CentralAPIToken:      "test-token",
		CentralAPITimeoutSec: 5,
	})
}

func (suite *CentralAPIClientTestSuite) TestFetchApplication() {
	suite.T().Run("Success_MapsWireShape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/central" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("assetId"); got != "APM0042" {
				t.Errorf("unexpected assetId %s", got)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("unexpected authorization header %s", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"data": {
					"application": {
						"name": "Payments Gateway",
						"assetId": "APM0042",
						"lifeCycleStatus": "Production",
						"risk": {"bia": "Tier 1"},
						"ownershipInfo": {
							"productOwner": {"name": "Ada Okafor", "email": "ada.okafor@example.com", "band": "7"},
							"techLead": {"name": "Priya Nair", "email": "priya.nair@example.com", "band": "6"}
						}
					}
				}
			}`))
		}))
		defer server.Close()

		app, err := suite.newClient(server.URL).FetchApplication(context.Background(), "APM0042")

		suite.NoError(err)
		suite.Equal("Payments Gateway", app.Name)
		suite.Equal("APM0042", app.AssetID)
		suite.Equal("Production", app.LifeCycleStatus)
		suite.Equal("Tier 1", app.Tier)
		suite.Equal("Ada Okafor", app.Roles["productOwner"].Name)
		suite.Equal("priya.nair@example.com", app.Roles["techLead"].Email)
		suite.Equal("6", app.Roles["techLead"].Band)
	})

	suite.T().Run("AssetNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		app, err := suite.newClient(server.URL).FetchApplication(context.Background(), "APM9999")

		suite.Nil(app)
		suite.True(apperrors.IsNotFound(err))
	})

	suite.T().Run("UpstreamError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		app, err := suite.newClient(server.URL).FetchApplication(context.Background(), "APM0042")

		suite.Nil(app)
		suite.True(apperrors.IsExternal(err))
		suite.Contains(err.Error(), "502")
	})

	suite.T().Run("MalformedResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {`))
		}))
		defer server.Close()

		_, err := suite.newClient(server.URL).FetchApplication(context.Background(), "APM0042")

		suite.True(apperrors.IsExternal(err))
	})

	suite.T().Run("MissingRequiredFields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"application": {"lifeCycleStatus": "Production"}}}`))
		}))
		defer server.Close()

		_, err := suite.newClient(server.URL).FetchApplication(context.Background(), "APM0042")

		suite.True(apperrors.IsExternal(err))
	})

	suite.T().Run("BaseURLNotConfigured", func(t *testing.T) {
		client := service.NewCentralAPIClient(&config.Config{})

		_, err := client.FetchApplication(context.Background(), "APM0042")

		suite.True(apperrors.IsExternal(err))
	})

	suite.T().Run("EmptyAssetID", func(t *testing.T) {
		_, err := suite.newClient("http://localhost:1").FetchApplication(context.Background(), "  ")

		suite.True(apperrors.IsValidation(err))
	})
}

func TestCentralAPIClientTestSuite(t *testing.T) {
	suite.Run(t, new(CentralAPIClientTestSuite))
}

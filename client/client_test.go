package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmguru/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithBaseURL(srv.URL)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// operations exercises every endpoint with the same backend behaviour so
// the error contract can be checked uniformly.
func operations(ctx context.Context) []struct {
	name     string
	fallback string
	call     func(c *Client) error
} {
	return []struct {
		name     string
		fallback string
		call     func(c *Client) error
	}{
		{"query", "Query failed", func(c *Client) error {
			_, err := c.Query(ctx, models.QueryRequest{Text: "when to sow wheat", Lang: "en"})
			return err
		}},
		{"weather", "Weather fetch failed", func(c *Client) error {
			_, err := c.GetWeather(ctx, "Karnataka", "Mysuru")
			return err
		}},
		{"market", "Market fetch failed", func(c *Client) error {
			_, err := c.GetMarketData(ctx, "tomato", "Bengaluru")
			return err
		}},
		{"upload", "Image upload failed", func(c *Client) error {
			_, err := c.UploadImage(ctx, "leaf.jpg", strings.NewReader("not-really-a-jpeg"))
			return err
		}},
		{"policy", "Policy match failed", func(c *Client) error {
			_, err := c.MatchPolicies(ctx, models.PolicyMatchRequest{State: "Karnataka"})
			return err
		}},
		{"chemreco", "Recommendation failed", func(c *Client) error {
			_, err := c.ChemReco(ctx, models.ChemRecoRequest{Crop: "tomato", Symptom: "yellow leaves"})
			return err
		}},
		{"health", "Health check failed", func(c *Client) error {
			_, err := c.Health(ctx)
			return err
		}},
	}
}

func TestErrorDetailBecomesMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "backend says no"}`))
	}))

	for _, op := range operations(context.Background()) {
		t.Run(op.name, func(t *testing.T) {
			err := op.call(c)
			require.EqualError(t, err, "backend says no")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		})
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))

	for _, op := range operations(context.Background()) {
		t.Run(op.name, func(t *testing.T) {
			require.EqualError(t, op.call(c), op.fallback)
		})
	}
}

func TestErrorEmptyDetailFallsBack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": ""}`))
	}))

	_, err := c.Query(context.Background(), models.QueryRequest{Text: "q", Lang: "en"})
	require.EqualError(t, err, "Query failed")
}

func TestTransportErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewWithBaseURL(srv.URL)

	_, err := c.Query(context.Background(), models.QueryRequest{Text: "q", Lang: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Query failed")
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer": `))
	}))

	_, err := c.Query(context.Background(), models.QueryRequest{Text: "q", Lang: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestQuerySuccess(t *testing.T) {
	var gotBody models.QueryRequest

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/query", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		writeJSON(t, w, models.QueryResponse{
			Answer:     "Sow wheat in early November.",
			Confidence: 0.82,
			Actions:    []string{"check soil moisture", "book soil test"},
			Sources: []models.Source{
				{Title: "Wheat Guide", URL: "https://example.org/wheat", Snippet: "sowing windows"},
			},
			Meta: models.Meta{"mode": "ai", "query_id": "q-42"},
		})
	}))

	resp, err := c.Query(context.Background(), models.QueryRequest{
		UserID: "u-1", Text: "when to sow wheat", Lang: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "when to sow wheat", gotBody.Text)
	assert.Equal(t, "en", gotBody.Lang)
	assert.Equal(t, "u-1", gotBody.UserID)

	assert.Equal(t, "Sow wheat in early November.", resp.Answer)
	assert.InDelta(t, 0.82, resp.Confidence, 1e-9)
	assert.Len(t, resp.Actions, 2)
	// Provenance must reach the caller untouched.
	assert.Equal(t, models.ModeAI, resp.Meta.Mode())
	assert.Equal(t, "q-42", resp.Meta.String("query_id"))
}

func TestGetWeatherEncodesQueryParams(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/weather", r.URL.Path)
		assert.Equal(t, "Tamil Nadu", r.URL.Query().Get("state"))
		assert.Equal(t, "Coimbatore", r.URL.Query().Get("district"))

		writeJSON(t, w, models.WeatherResponse{
			Forecast: models.WeatherForecast{
				Temperature: 31.5, Humidity: 72, Rainfall: 1.2,
				Description: "Partly cloudy with chance of light rain",
			},
			LastUpdated:    "2024-06-01T10:00:00Z",
			Recommendation: "Light rain expected. Monitor soil moisture before irrigating.",
			Meta:           models.Meta{"source": "IMD/Data.gov.in", "api_used": true},
		})
	}))

	resp, err := c.GetWeather(context.Background(), "Tamil Nadu", "Coimbatore")
	require.NoError(t, err)
	assert.InDelta(t, 31.5, resp.Forecast.Temperature, 1e-9)
	assert.Equal(t, "IMD/Data.gov.in", resp.Meta.Source())
	assert.True(t, resp.Meta.Bool("api_used"))
}

// Mirrors the documented tomato/Bengaluru scenario: the response must come
// back structurally identical, including the untouched signal and history
// order.
func TestGetMarketDataScenario(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/market", r.URL.Path)
		assert.Equal(t, "tomato", r.URL.Query().Get("commodity"))
		assert.Equal(t, "Bengaluru", r.URL.Query().Get("mandi"))

		_, _ = w.Write([]byte(`{
			"commodity": "tomato",
			"mandi": "Bengaluru",
			"latest_price": 25.5,
			"seven_day_ma": 24.0,
			"signal": "HOLD",
			"history": [
				{"date": "2024-01-01", "price": 23},
				{"date": "2024-01-02", "price": 25.5}
			],
			"meta": {"source": "demo"}
		}`))
	}))

	resp, err := c.GetMarketData(context.Background(), "tomato", "Bengaluru")
	require.NoError(t, err)

	assert.Equal(t, &models.MarketResponse{
		Commodity:   "tomato",
		Mandi:       "Bengaluru",
		LatestPrice: 25.5,
		SevenDayMA:  24.0,
		Signal:      models.SignalHold,
		History: []models.PricePoint{
			{Date: "2024-01-01", Price: 23},
			{Date: "2024-01-02", Price: 25.5},
		},
		Meta: models.Meta{"source": "demo"},
	}, resp)
}

// The client does not validate the signal enum; an out-of-contract value
// from an untrusted backend is surfaced unchanged.
func TestMarketSignalPassesThrough(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.MarketResponse{
			Commodity: "onion", Mandi: "Pune",
			LatestPrice: 14, SevenDayMA: 13, Signal: "PANIC",
			Meta: models.Meta{"source": "demo"},
		})
	}))

	resp, err := c.GetMarketData(context.Background(), "onion", "Pune")
	require.NoError(t, err)
	assert.Equal(t, models.Signal("PANIC"), resp.Signal)
	assert.False(t, resp.Signal.IsValid())
}

// total_matches is backend-owned; a mismatched count is not recomputed.
func TestMatchPoliciesTotalPassesThrough(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/policy-match", r.URL.Path)

		var req models.PolicyMatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Punjab", req.State)

		writeJSON(t, w, models.PolicyMatchResponse{
			MatchedSchemes: []models.SchemeInfo{
				{
					Name:         "PM-KISAN",
					Code:         "PM-KISAN",
					Description:  "Income support scheme",
					Eligibility:  []string{"Land holding up to 2 hectares"},
					RequiredDocs: []string{"Aadhaar Card"},
					Benefits:     "₹6000 per year",
				},
			},
			TotalMatches:    99,
			Recommendations: []string{"Apply for PM-KISAN first."},
			Meta:            models.Meta{"state": "Punjab"},
		})
	}))

	resp, err := c.MatchPolicies(context.Background(), models.PolicyMatchRequest{
		State: "Punjab", Crop: "wheat", LandSize: 1.5, FarmerType: "marginal",
	})
	require.NoError(t, err)
	assert.Len(t, resp.MatchedSchemes, 1)
	assert.Equal(t, 99, resp.TotalMatches)
}

func TestChemRecoSuccess(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chem-reco", r.URL.Path)

		var req models.ChemRecoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tomato", req.Crop)
		assert.Equal(t, "severe", req.Severity)

		writeJSON(t, w, models.ChemRecoResponse{
			Diagnosis:  "Based on described symptoms: early blight",
			Confidence: 0.6,
			Recommendations: []models.Treatment{
				{
					Type: "cultural", Method: "Sanitation",
					Description: "Remove affected plant parts.",
					Timing:      "Immediate and ongoing",
					Precautions: []string{"Disinfect tools between plants"},
				},
			},
			NextSteps: []string{"Monitor the affected plants daily"},
			Warnings:  []string{"Consult local agricultural experts."},
			Meta:      models.Meta{"has_image": false, "severity": "severe"},
		})
	}))

	resp, err := c.ChemReco(context.Background(), models.ChemRecoRequest{
		Crop: "tomato", Symptom: "brown spots", Severity: "severe",
	})
	require.NoError(t, err)
	assert.Equal(t, "cultural", resp.Recommendations[0].Type)
	assert.False(t, resp.Meta.Bool("has_image"))
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		writeJSON(t, w, models.HealthStatus{
			Status: "healthy", DemoMode: true, Database: "local_mode",
			Timestamp: "2025-01-16T12:00:00Z",
		})
	}))

	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.DemoMode)
}

func TestSupplementalReads(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/market/commodities":
			writeJSON(t, w, models.CommodityList{Commodities: []models.CommodityInfo{
				{Name: "Wheat", Value: "wheat", Unit: "quintal"},
			}})
		case "/api/market/mandis":
			assert.Equal(t, "Karnataka", r.URL.Query().Get("state"))
			writeJSON(t, w, models.MandiList{Mandis: []models.MandiInfo{
				{Name: "Bengaluru", State: "Karnataka"},
			}})
		case "/api/market/analysis":
			assert.Equal(t, "30", r.URL.Query().Get("days"))
			writeJSON(t, w, models.MarketAnalysis{
				Commodity: "wheat", PeriodDays: 30,
				Statistics: models.MarketStatistics{AvgPrice: 2310, VolatilityPct: 4.2},
				Insights:   []string{"Stable market conditions observed"},
			})
		case "/api/policy/states":
			writeJSON(t, w, models.StateList{States: []string{"Karnataka", "Punjab"}})
		case "/api/policy/schemes":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			writeJSON(t, w, models.SchemeList{
				Schemes: []map[string]any{{"name": "PM-KISAN", "max_land_size": 2.0}},
				Total:   1,
			})
		case "/api/chem-reco/crops":
			writeJSON(t, w, models.CropList{Crops: []models.CropInfo{
				{Name: "Tomato", Value: "tomato", CommonIssues: []string{"early blight"}},
			}})
		case "/api/chem-reco/symptoms":
			writeJSON(t, w, models.SymptomList{SymptomCategories: []models.SymptomCategory{
				{Category: "Leaf Issues", Symptoms: []string{"yellowing leaves"}},
			}})
		case "/api/query/history":
			assert.Equal(t, "u-9", r.URL.Query().Get("user_id"))
			writeJSON(t, w, models.QueryHistory{Queries: []map[string]any{{"question": "q1"}}})
		case "/api/weather/forecast":
			assert.Equal(t, "5", r.URL.Query().Get("days"))
			writeJSON(t, w, models.ExtendedForecast{
				Location:  "Mysuru, Karnataka",
				Forecasts: []models.DailyForecast{{Date: "2024-06-01", Temperature: 29}},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := context.Background()

	commodities, err := c.Commodities(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wheat", commodities.Commodities[0].Value)

	mandis, err := c.Mandis(ctx, "Karnataka")
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru", mandis.Mandis[0].Name)

	analysis, err := c.MarketAnalysis(ctx, "wheat", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, analysis.PeriodDays)

	states, err := c.States(ctx)
	require.NoError(t, err)
	assert.Contains(t, states.States, "Punjab")

	schemes, err := c.Schemes(ctx, "", "", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, schemes.Total)

	crops, err := c.SupportedCrops(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tomato", crops.Crops[0].Value)

	symptoms, err := c.CommonSymptoms(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Leaf Issues", symptoms.SymptomCategories[0].Category)

	history, err := c.QueryHistory(ctx, "u-9", 10)
	require.NoError(t, err)
	assert.Len(t, history.Queries, 1)

	forecast, err := c.ExtendedForecast(ctx, "Karnataka", "Mysuru", 5)
	require.NoError(t, err)
	assert.Len(t, forecast.Forecasts, 1)
}

func TestBaseURLTrimmedAndDefaulted(t *testing.T) {
	c := NewWithBaseURL("http://backend:8000/")
	assert.Equal(t, "http://backend:8000", c.BaseURL())

	c = NewWithBaseURL("")
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
}

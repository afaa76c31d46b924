package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/internal/infrastructure/router"
	"travelplan-service/pkg/logger"
	"travelplan-service/pkg/parser"
)

const parisRomeLine = "- Air France (AF123) : Paris -> Rome | départ 2026-03-01 10:00 arrivée 2026-03-01 12:00 pour 99€"

type stubResponseRepo struct {
	saved   []*entity.AgentResponse
	saveErr error
}

func (r *stubResponseRepo) Save(_ context.Context, response *entity.AgentResponse) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, response)
	return nil
}

func (r *stubResponseRepo) FindByResponseID(context.Context, string) (*entity.AgentResponse, error) {
	return nil, entity.ErrNotFound
}

func (r *stubResponseRepo) FindUnprocessed(context.Context, int) ([]*entity.AgentResponse, error) {
	return nil, nil
}

func (r *stubResponseRepo) UpdateStatusByResponseID(context.Context, string, string, time.Time) error {
	return nil
}

func (r *stubResponseRepo) MarkAsProcessedByResponseID(context.Context, string, string, string, string, map[string]interface{}) error {
	return nil
}

func (r *stubResponseRepo) ResetProcessingResponses(context.Context) error {
	return nil
}

type stubItineraryRepo struct {
	itineraries map[string]*entity.Itinerary
	err         error
}

func (r *stubItineraryRepo) FindByResponseID(_ context.Context, responseID string) (*entity.Itinerary, error) {
	if r.err != nil {
		return nil, r.err
	}
	itinerary, ok := r.itineraries[responseID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return itinerary, nil
}

func (r *stubItineraryRepo) Upsert(_ context.Context, itinerary *entity.Itinerary) error {
	r.itineraries[itinerary.ResponseID] = itinerary
	return nil
}

type handlerFixture struct {
	handler     *Handler
	responses   *stubResponseRepo
	itineraries *stubItineraryRepo
}

func newHandlerFixture() *handlerFixture {
	log := logger.NewNopLogger()
	f := &handlerFixture{
		responses:   &stubResponseRepo{},
		itineraries: &stubItineraryRepo{itineraries: map[string]*entity.Itinerary{}},
	}
	f.handler = NewHandler(parser.NewResponseParser(log), router.NewDefaultCategoryRouter(log), f.responses, f.itineraries, time.Minute, log)
	return f
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected echo.HTTPError, got %v", err)
	assert.Equal(t, code, httpErr.Code)
}

func TestParse(t *testing.T) {
	f := newHandlerFixture()
	body, err := json.Marshal(parseRequest{Text: parisRomeLine})
	require.NoError(t, err)

	ctx, rec := newJSONContext(http.MethodPost, "/api/v1/parse", string(body))
	require.NoError(t, f.handler.parse(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result parser.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "Rome", result.Flights[0].Destination)
	assert.Empty(t, result.Hotels)
	assert.Equal(t, 1, f.handler.cache.ItemCount())

	ctx, second := newJSONContext(http.MethodPost, "/api/v1/parse", string(body))
	require.NoError(t, f.handler.parse(ctx))

	assert.Equal(t, rec.Body.String(), second.Body.String())
	assert.Equal(t, 1, f.handler.cache.ItemCount())
}

func TestParse_EmptyTextGivesEmptyLists(t *testing.T) {
	f := newHandlerFixture()

	ctx, rec := newJSONContext(http.MethodPost, "/api/v1/parse", `{"text":""}`)
	require.NoError(t, f.handler.parse(ctx))

	assert.JSONEq(t, `{"flights":[],"hotels":[],"activities":[]}`, rec.Body.String())
}

func TestSubmitResponse(t *testing.T) {
	f := newHandlerFixture()

	ctx, rec := newJSONContext(http.MethodPost, "/api/v1/responses",
		`{"sessionId":"s1","agent":"supervisor","query":{"origin":"Paris","destination":"partout"},"text":"hello"}`)
	require.NoError(t, f.handler.submitResponse(ctx))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp submitResponseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ResponseID)
	assert.Equal(t, entity.StatusPending, resp.Status)

	require.Len(t, f.responses.saved, 1)
	saved := f.responses.saved[0]
	assert.Equal(t, resp.ResponseID, saved.ResponseID)
	assert.Equal(t, "s1", saved.SessionID)
	assert.Equal(t, "", saved.Query.Destination)
}

func TestSubmitResponse_RequiresText(t *testing.T) {
	f := newHandlerFixture()

	ctx, _ := newJSONContext(http.MethodPost, "/api/v1/responses", `{"text":"   "}`)

	requireHTTPError(t, f.handler.submitResponse(ctx), http.StatusBadRequest)
	assert.Empty(t, f.responses.saved)
}

func TestSubmitResponse_SaveError(t *testing.T) {
	f := newHandlerFixture()
	f.responses.saveErr = errors.New("duplicate key")

	ctx, _ := newJSONContext(http.MethodPost, "/api/v1/responses", `{"text":"hello"}`)

	requireHTTPError(t, f.handler.submitResponse(ctx), http.StatusInternalServerError)
}

func TestGetItinerary(t *testing.T) {
	f := newHandlerFixture()
	f.itineraries.itineraries["r1"] = &entity.Itinerary{
		ResponseID: "r1",
		Flights:    []parser.FlightRecord{{Airline: "Air France (AF123)", Price: "99"}},
	}

	ctx, rec := newJSONContext(http.MethodGet, "/api/v1/itineraries/r1", "")
	ctx.SetParamNames("responseId")
	ctx.SetParamValues("r1")
	require.NoError(t, f.handler.getItinerary(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	var itinerary entity.Itinerary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &itinerary))
	assert.Equal(t, "r1", itinerary.ResponseID)
	assert.Len(t, itinerary.Flights, 1)
}

func TestGetItinerary_NotFound(t *testing.T) {
	f := newHandlerFixture()

	ctx, _ := newJSONContext(http.MethodGet, "/api/v1/itineraries/missing", "")
	ctx.SetParamNames("responseId")
	ctx.SetParamValues("missing")

	requireHTTPError(t, f.handler.getItinerary(ctx), http.StatusNotFound)
}

func TestGetItinerary_StoreError(t *testing.T) {
	f := newHandlerFixture()
	f.itineraries.err = errors.New("timeout")

	ctx, _ := newJSONContext(http.MethodGet, "/api/v1/itineraries/r1", "")
	ctx.SetParamNames("responseId")
	ctx.SetParamValues("r1")

	requireHTTPError(t, f.handler.getItinerary(ctx), http.StatusInternalServerError)
}

func TestGetItinerarySummary(t *testing.T) {
	f := newHandlerFixture()
	f.itineraries.itineraries["r1"] = &entity.Itinerary{ResponseID: "r1"}

	ctx, rec := newJSONContext(http.MethodGet, "/api/v1/itineraries/r1/summary", "")
	ctx.SetParamNames("responseId")
	ctx.SetParamValues("r1")
	require.NoError(t, f.handler.getItinerarySummary(ctx))

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ResponseID)
	assert.Contains(t, resp.Summary, "Aucun vol trouvé")
}

func TestRoute(t *testing.T) {
	f := newHandlerFixture()

	ctx, rec := newJSONContext(http.MethodPost, "/api/v1/route", `{"message":"hôtels avec spa"}`)
	require.NoError(t, f.handler.route(ctx))

	assert.JSONEq(t, `{"category":"hotels"}`, rec.Body.String())

	ctx, _ = newJSONContext(http.MethodPost, "/api/v1/route", `{"message":""}`)
	requireHTTPError(t, f.handler.route(ctx), http.StatusBadRequest)
}

func TestIntent_FallsBackToDefault(t *testing.T) {
	f := newHandlerFixture()

	ctx, rec := newJSONContext(http.MethodPost, "/api/v1/intent", `{"text":"pas du json","defaultCity":"Madrid"}`)
	require.NoError(t, f.handler.intent(ctx))

	var intent parser.Intent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &intent))
	assert.Equal(t, parser.DefaultIntent("Madrid"), intent)
}

func TestServerRoutes(t *testing.T) {
	f := newHandlerFixture()
	e := NewServer(f.handler, prometheus.NewRegistry(), logger.NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/itineraries/unknown", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

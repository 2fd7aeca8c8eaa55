package httptransport

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cardwise/internal/advisory"
	"cardwise/internal/cards"
	"cardwise/internal/platform/metrics"
	"cardwise/internal/recommend"
	"cardwise/internal/transport/http/mocks"
	"cardwise/pkg/domain"
	dErrors "cardwise/pkg/domain-errors"
	"cardwise/pkg/platform/audit"
	"cardwise/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	cards       *mocks.MockCardProvider
	recommender *mocks.MockRecommender
	advisor     *mocks.MockAdvisor
	secrets     *mocks.MockSecretStore
	router      http.Handler
	wallet      []domain.Card
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cards = mocks.NewMockCardProvider(s.ctrl)
	s.recommender = mocks.NewMockRecommender(s.ctrl)
	s.advisor = mocks.NewMockAdvisor(s.ctrl)
	s.secrets = mocks.NewMockSecretStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	s.router = NewRouter(logger, metrics.New(reg), reg,
		NewCardsHandler(s.cards, logger),
		NewRecommendationHandler(s.cards, s.recommender, logger),
		NewAdvisoryHandler(s.advisor, logger),
		NewSecretsHandler(s.secrets, logger),
	)

	card, err := domain.NewCard(domain.CardID(uuid.New()), domain.InstitutionID(uuid.New()),
		"Chase Sapphire Preferred", "4821", "https://art.example/sp.png", true, domain.NetworkVisa)
	s.Require().NoError(err)
	s.wallet = []domain.Card{card}
}

func (s *HandlerSuite) TestHealthAndMetrics() {
	w := testutil.Do(s.router, http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))

	w = testutil.Do(s.router, http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "cardwise_http_requests_total")
}

func (s *HandlerSuite) TestCards() {
	s.Run("lists wallet", func() {
		s.cards.EXPECT().Cards(gomock.Any()).Return(s.wallet)

		w := testutil.Do(s.router, http.MethodGet, "/cards", "")

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.Decode[CardsResponse](s.T(), w)
		s.Require().Len(resp.Cards, 1)
		s.Equal(s.wallet[0].ID, resp.Cards[0].ID)
	})

	s.Run("art status", func() {
		s.cards.EXPECT().ValidateArt(gomock.Any()).Return([]cards.ArtStatus{
			{CardID: s.wallet[0].ID, URL: s.wallet[0].ArtURL, Reachable: false, StatusCode: 404},
		})

		w := testutil.Do(s.router, http.MethodGet, "/cards/art-status", "")

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.Decode[ArtStatusResponse](s.T(), w)
		s.Require().Len(resp.Results, 1)
		s.False(resp.Results[0].Reachable)
	})
}

func (s *HandlerSuite) TestCatalog() {
	s.Run("benefits by name", func() {
		w := testutil.Do(s.router, http.MethodGet, "/catalog/benefits?name=Chase+Sapphire+Preferred+Card", "")

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.Decode[BenefitsResponse](s.T(), w)
		s.Equal("3× dining, 2× travel, primary rental CDW (est.)", resp.Benefits)
	})

	s.Run("missing name - 400", func() {
		w := testutil.Do(s.router, http.MethodGet, "/catalog/benefits", "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("lists entries", func() {
		w := testutil.Do(s.router, http.MethodGet, "/catalog", "")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Sapphire Preferred")
	})
}

func (s *HandlerSuite) TestRecommendations() {
	s.Run("matched card carries benefits", func() {
		s.cards.EXPECT().Cards(gomock.Any()).Return(s.wallet)
		s.recommender.EXPECT().Recommend(gomock.Any(), "dining", s.wallet).Return(recommend.Result{
			Card: &s.wallet[0], Rule: "dining", Hint: "Sapphire", Rationale: "3× on dining",
		})

		w := testutil.Do(s.router, http.MethodPost, "/recommendations", `{"category":" dining "}`)

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.Decode[RecommendationResponse](s.T(), w)
		s.Require().NotNil(resp.Card)
		s.Equal("3× on dining", resp.Rationale)
		s.Equal("3× dining, 2× travel, primary rental CDW (est.)", resp.Benefits)
	})

	s.Run("no match still returns rationale", func() {
		s.cards.EXPECT().Cards(gomock.Any()).Return(nil)
		s.recommender.EXPECT().Recommend(gomock.Any(), "gas", gomock.Nil()).Return(recommend.Result{
			Rule: "gas", Hint: "Custom Cash", Rationale: "5% on gas",
		})

		w := testutil.Do(s.router, http.MethodPost, "/recommendations", `{"category":"gas"}`)

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.Decode[map[string]any](s.T(), w)
		s.NotContains(resp, "card")
		s.Equal("5% on gas", resp["rationale"])
	})

	s.Run("invalid json - 400", func() {
		w := testutil.Do(s.router, http.MethodPost, "/recommendations", `{bad`)
		testutil.AssertStatusAndError(s.T(), w, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *HandlerSuite) TestPermission() {
	s.advisor.EXPECT().RequestPermission(gomock.Any()).Return(false)

	w := testutil.Do(s.router, http.MethodPost, "/notifications/permission", "")

	s.Equal(http.StatusOK, w.Code)
	s.False(testutil.Decode[PermissionResponse](s.T(), w).Granted)
}

func (s *HandlerSuite) TestSuggestions() {
	s.Run("always accepted", func() {
		s.advisor.EXPECT().ScheduleSuggestion(gomock.Any(), advisory.Suggestion{
			Title: "Use Sapphire", Body: "3× on dining", Venue: "venue-123", Reason: "dining",
		})

		w := testutil.Do(s.router, http.MethodPost, "/suggestions",
			testutil.MustMarshal(s.T(), SuggestionRequest{Title: "Use Sapphire", Body: "3× on dining", Venue: " venue-123 ", Reason: "dining"}))

		s.Equal(http.StatusAccepted, w.Code)
	})

	s.Run("missing venue - 400", func() {
		s.advisor.EXPECT().ScheduleSuggestion(gomock.Any(), gomock.Any()).Times(0)

		w := testutil.Do(s.router, http.MethodPost, "/suggestions", `{"title":"t","venue":"  "}`)

		testutil.AssertStatusAndError(s.T(), w, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})

	s.Run("audit log", func() {
		at := time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)
		s.advisor.EXPECT().AuditLog(gomock.Any()).Return([]audit.Entry{
			{ID: "a1", Title: "Use Sapphire", Timestamp: at, Reason: "dining"},
		}, nil)

		w := testutil.Do(s.router, http.MethodGet, "/suggestions/audit", "")

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.Decode[AuditResponse](s.T(), w)
		s.Require().Len(resp.Entries, 1)
		s.Equal(at, resp.Entries[0].Timestamp)
	})

	s.Run("empty audit log encodes as array", func() {
		s.advisor.EXPECT().AuditLog(gomock.Any()).Return(nil, nil)

		w := testutil.Do(s.router, http.MethodGet, "/suggestions/audit", "")

		s.JSONEq(`{"entries":[]}`, w.Body.String())
	})

	s.Run("audit read failure - 500", func() {
		s.advisor.EXPECT().AuditLog(gomock.Any()).Return(nil, errors.New("redis down"))

		w := testutil.Do(s.router, http.MethodGet, "/suggestions/audit", "")

		s.Equal(http.StatusInternalServerError, w.Code)
		body := testutil.Decode[map[string]string](s.T(), w)
		s.Equal(string(dErrors.CodeInternal), body["error"])
		s.NotContains(body, "error_description")
	})
}

func (s *HandlerSuite) TestSecrets() {
	s.Run("save", func() {
		s.secrets.EXPECT().Save(gomock.Any(), "plaid", "token-1").Return(nil)

		w := testutil.Do(s.router, http.MethodPut, "/secrets/plaid", `{"value":"token-1"}`)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("read", func() {
		s.secrets.EXPECT().Read(gomock.Any(), "plaid").Return("token-1", nil)

		w := testutil.Do(s.router, http.MethodGet, "/secrets/plaid", "")

		s.Equal(http.StatusOK, w.Code)
		s.Equal(SecretResponse{Name: "plaid", Value: "token-1"}, testutil.Decode[SecretResponse](s.T(), w))
	})

	s.Run("read missing - 404", func() {
		s.secrets.EXPECT().Read(gomock.Any(), "absent").Return("", dErrors.New(dErrors.CodeNotFound, "secret not found"))

		w := testutil.Do(s.router, http.MethodGet, "/secrets/absent", "")

		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("secret not found", testutil.Decode[map[string]string](s.T(), w)["error_description"])
	})

	s.Run("delete", func() {
		s.secrets.EXPECT().Delete(gomock.Any(), "plaid").Return(nil)

		w := testutil.Do(s.router, http.MethodDelete, "/secrets/plaid", "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("save failure hides description", func() {
		s.secrets.EXPECT().Save(gomock.Any(), "plaid", "v").Return(dErrors.Wrap(errors.New("pq: down"), dErrors.CodeInternal, "failed to save secret"))

		w := testutil.Do(s.router, http.MethodPut, "/secrets/plaid", `{"value":"v"}`)

		s.Equal(http.StatusInternalServerError, w.Code)
		s.NotContains(w.Body.String(), "pq: down")
	})
}

func TestRecommendationRequestNormalize(t *testing.T) {
	req := RecommendationRequest{Category: "  Coffee  "}
	req.Normalize()
	assert.Equal(t, "Coffee", req.Category)
	assert.NoError(t, req.Validate())
}

func TestSuggestionRequestValidate(t *testing.T) {
	valid := SuggestionRequest{Title: "t", Venue: "v"}
	assert.NoError(t, valid.Validate())

	long := valid
	long.Title = strings.Repeat("x", maxTitleLength+1)
	assert.True(t, dErrors.HasCode(long.Validate(), dErrors.CodeInvalidInput))

	noTitle := valid
	noTitle.Title = ""
	assert.True(t, dErrors.HasCode(noTitle.Validate(), dErrors.CodeInvalidInput))
}

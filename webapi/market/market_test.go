package market_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/webapi/testutils"
)

type MarketTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *MarketTestSuite) SetupTest() {
	s.app = testutils.New(s.T())
}

func TestMarketTestSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (s *MarketTestSuite) TestListMarketData() {
	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/api/market-data", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var data []domain.MarketData
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&data))
	s.Len(data, 4)
}

func (s *MarketTestSuite) TestGetMarketDataByCategory() {
	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/api/market-data/real_estate", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var m domain.MarketData
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&m))
	s.Equal(domain.MarketRealEstate, m.Category)
	s.Equal("1200000.00", m.TotalValue)
}

func (s *MarketTestSuite) TestGetMarketDataUnknownCategory() {
	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/api/market-data/fine_wine", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *MarketTestSuite) TestReplaceMarketData() {
	payload := `{"totalValue":"2000000.00","changePercent":"5.0"}`
	resp := testutils.MakeRequest(s.T(), s.app, "PUT", "/api/market-data/real_estate", payload)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	getResp := testutils.MakeRequest(s.T(), s.app, "GET", "/api/market-data/real_estate", "")
	defer getResp.Body.Close() //nolint:errcheck

	var m domain.MarketData
	s.Require().NoError(json.NewDecoder(getResp.Body).Decode(&m))
	s.Equal(0, m.ID)
	s.Equal("2000000.00", m.TotalValue)
	s.Equal("5.0", m.ChangePercent)
}

func (s *MarketTestSuite) TestReplaceMarketDataRejectsNonDecimal() {
	payload := `{"totalValue":"lots","changePercent":"5.0"}`
	resp := testutils.MakeRequest(s.T(), s.app, "PUT", "/api/market-data/art", payload)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

package bridge_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/webapi/testutils"
)

type BridgeTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *BridgeTestSuite) SetupTest() {
	s.app = testutils.New(s.T())
}

func TestBridgeTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeTestSuite))
}

func (s *BridgeTestSuite) TestListBridges() {
	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/api/bridges", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var bridges []domain.Bridge
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&bridges))
	s.Len(bridges, 3)
}

func (s *BridgeTestSuite) TestGetBridgeVariants() {
	testCases := []struct {
		desc       string
		path       string
		wantStatus int
	}{
		{desc: "seeded bridge", path: "/api/bridges/2", wantStatus: fiber.StatusOK},
		{desc: "unknown id", path: "/api/bridges/99", wantStatus: fiber.StatusNotFound},
		{desc: "non-numeric id", path: "/api/bridges/xyz", wantStatus: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := testutils.MakeRequest(s.T(), s.app, "GET", tc.path, "")
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *BridgeTestSuite) TestCreateBridgeIgnoresCallerFee() {
	// deploymentFee in the payload has no matching DTO field; the platform
	// fee wins no matter what the caller sends.
	payload := `{
		"name": "ARB-VARA Bridge",
		"sourceChain": "Arbitrum",
		"targetChain": "Vara Network",
		"bridgeType": "economic",
		"owner": "user2",
		"deploymentFee": "0.01"
	}`
	resp := testutils.MakeRequest(s.T(), s.app, "POST", "/api/bridges", payload)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var b domain.Bridge
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&b))
	s.Equal(4, b.ID)
	s.Equal("50.00", b.DeploymentFee)
	s.Equal(domain.BridgeStatusConfigured, b.Status)

	actResp := testutils.MakeRequest(s.T(), s.app, "GET", "/api/activities", "")
	defer actResp.Body.Close() //nolint:errcheck
	var activities []domain.Activity
	s.Require().NoError(json.NewDecoder(actResp.Body).Decode(&activities))
	s.Require().Len(activities, 4)
	s.Equal(domain.ActivityBridgeDeployed, activities[0].Type)
	s.Equal("-$50.00", activities[0].Amount)
}

func (s *BridgeTestSuite) TestCreateBridgeRejectsUnknownType() {
	payload := `{"name":"B","sourceChain":"A","targetChain":"B","bridgeType":"teleport","owner":"u"}`
	resp := testutils.MakeRequest(s.T(), s.app, "POST", "/api/bridges", payload)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *BridgeTestSuite) TestUpdateBridgeStatus() {
	resp := testutils.MakeRequest(s.T(), s.app, "PATCH", "/api/bridges/3", `{"status":"deploying"}`)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var b domain.Bridge
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&b))
	s.Equal(domain.BridgeStatusDeploying, b.Status)
	s.Equal("BSC-VARA Bridge", b.Name)
}

func (s *BridgeTestSuite) TestUpdateBridgeNotFound() {
	resp := testutils.MakeRequest(s.T(), s.app, "PATCH", "/api/bridges/99", `{"status":"paused"}`)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

package repository_test

import (
	"testing"

	"barshift-backend/internal/database/models"
	"barshift-backend/internal/repository"
	"barshift-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TradeRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *repository.TradeRepository
	factories *testutils.FactorySet

	venue    *models.Venue
	shift    *models.Shift
	proposer *models.StaffMember
	receiver *models.StaffMember
}

func (suite *TradeRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.repo = repository.NewTradeRepository(suite.DB)
	suite.factories = testutils.NewFactorySet()

	suite.venue = suite.factories.Venue.Create()
	require.NoError(suite.T(), suite.DB.Create(suite.venue).Error)
	suite.shift = suite.factories.Shift.WithVenue(suite.venue.ID)
	require.NoError(suite.T(), suite.DB.Create(suite.shift).Error)
	suite.proposer = suite.factories.Staff.Create()
	require.NoError(suite.T(), suite.DB.Create(suite.proposer).Error)
	suite.receiver = suite.factories.Staff.Create()
	require.NoError(suite.T(), suite.DB.Create(suite.receiver).Error)
}

func (suite *TradeRepositoryTestSuite) createTrade(status models.TradeStatus) *models.ShiftTrade {
	trade := &models.ShiftTrade{
		ShiftID:    suite.shift.ID,
		ProposerID: suite.proposer.ID,
		ReceiverID: &suite.receiver.ID,
		Status:     status,
	}
	require.NoError(suite.T(), suite.repo.Create(trade))
	return trade
}

func (suite *TradeRepositoryTestSuite) TestGetOpenByShift_ReturnsOnlyNonTerminalTrades() {
	proposed := suite.createTrade(models.TradeStatusProposed)
	accepted := suite.createTrade(models.TradeStatusAccepted)
	suite.createTrade(models.TradeStatusDeclined)
	suite.createTrade(models.TradeStatusCancelled)
	suite.createTrade(models.TradeStatusApproved)

	otherShift := suite.factories.Shift.WithVenue(suite.venue.ID)
	require.NoError(suite.T(), suite.DB.Create(otherShift).Error)
	require.NoError(suite.T(), suite.repo.Create(&models.ShiftTrade{
		ShiftID:    otherShift.ID,
		ProposerID: suite.proposer.ID,
		Status:     models.TradeStatusProposed,
	}))

	open, err := suite.repo.GetOpenByShift(suite.shift.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), open, 2)
	ids := []interface{}{open[0].ID, open[1].ID}
	assert.Contains(suite.T(), ids, proposed.ID)
	assert.Contains(suite.T(), ids, accepted.ID)
}

func (suite *TradeRepositoryTestSuite) TestGetByID_PreloadsShiftAndParties() {
	trade := suite.createTrade(models.TradeStatusProposed)

	found, err := suite.repo.GetByID(trade.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.shift.ID, found.Shift.ID)
	assert.Equal(suite.T(), suite.proposer.ID, found.Proposer.ID)
	require.NotNil(suite.T(), found.Receiver)
	assert.Equal(suite.T(), suite.receiver.ID, found.Receiver.ID)
}

func TestTradeRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &TradeRepositoryTestSuite{BaseTestSuite: base})
}

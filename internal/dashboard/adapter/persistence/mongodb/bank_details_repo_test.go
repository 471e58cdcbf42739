package mongodb_test

import (
	"context"
	"testing"
	"time"

	"givehub-admin/internal/dashboard/adapter/persistence/mongodb"
	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BankDetailsRepoTestSuite struct {
	suite.Suite
	client   *mongo.Client
	database *mongo.Database
	repo     *mongodb.MongoBankDetailsRepository
}

func (suite *BankDetailsRepoTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}

	suite.client = client
	suite.database = client.Database("givehub_dashboard_test")
	suite.repo = mongodb.NewMongoBankDetailsRepository(suite.database, logger.NewLoggerWithConfig("error", "text"))
}

func (suite *BankDetailsRepoTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.database.Drop(context.Background())
		_ = suite.client.Disconnect(context.Background())
	}
}

func (suite *BankDetailsRepoTestSuite) SetupTest() {
	_ = suite.database.Collection("bank_details").Drop(context.Background())
}

func (suite *BankDetailsRepoTestSuite) TestPutThenGet_RoundTrips() {
	// Arrange
	details := model.BankDetails{
		AccountHolder: "Ada Lovelace",
		BankName:      "First Example Bank",
		AccountNumber: "000123456",
		IBAN:          "DE89370400440532013000",
		SwiftCode:     "COBADEFF",
		RoutingNumber: "026009593",
	}

	// Act
	err := suite.repo.Put(context.Background(), "user-1", details)
	require.NoError(suite.T(), err)
	loaded, err := suite.repo.Get(context.Background(), "user-1")

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), details, loaded)
}

func (suite *BankDetailsRepoTestSuite) TestGet_MissingUserYieldsEmptyRecord() {
	loaded, err := suite.repo.Get(context.Background(), "nobody")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), loaded.IsEmpty())
}

func (suite *BankDetailsRepoTestSuite) TestPut_OverwritesInFull() {
	// Arrange: first record fills every field, second only one.
	first := model.BankDetails{AccountHolder: "Ada", BankName: "Bank A", IBAN: "DE89"}
	second := model.BankDetails{AccountHolder: "Ada L."}

	require.NoError(suite.T(), suite.repo.Put(context.Background(), "user-1", first))
	require.NoError(suite.T(), suite.repo.Put(context.Background(), "user-1", second))

	// Act
	loaded, err := suite.repo.Get(context.Background(), "user-1")

	// Assert: no merge, the old bank name and IBAN are gone.
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), second, loaded)
}

func (suite *BankDetailsRepoTestSuite) TestGet_UnreadableDocumentYieldsEmptyRecord() {
	// Arrange: a document whose details field has the wrong shape.
	_, err := suite.database.Collection("bank_details").InsertOne(context.Background(), bson.M{
		"_id":     "corrupt-user",
		"details": "not a document",
	})
	require.NoError(suite.T(), err)

	// Act
	loaded, err := suite.repo.Get(context.Background(), "corrupt-user")

	// Assert
	require.NoError(suite.T(), err)
	assert.True(suite.T(), loaded.IsEmpty())
}

func (suite *BankDetailsRepoTestSuite) TestGet_EmptyUserIDRejected() {
	_, err := suite.repo.Get(context.Background(), "")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "user id cannot be empty")
}

func (suite *BankDetailsRepoTestSuite) TestPut_EmptyUserIDRejected() {
	err := suite.repo.Put(context.Background(), "", model.BankDetails{})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "user id cannot be empty")
}

func TestBankDetailsRepoTestSuite(t *testing.T) {
	suite.Run(t, new(BankDetailsRepoTestSuite))
}

package mongo

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStore_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get existing key", func(mt *mtest.T) {
		s := &store{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "storefront:abc:cart"},
			{Key: "value", Value: `[{"id":1}]`},
		}))

		val, err := s.Get(context.Background(), "storefront:abc:cart")
		require.NoError(mt, err)
		assert.Equal(mt, `[{"id":1}]`, val)
	})

	mt.Run("get missing key", func(mt *mtest.T) {
		s := &store{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := s.Get(context.Background(), "storefront:abc:cart")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("set upserts", func(mt *mtest.T) {
		s := &store{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "k"}}}},
		))

		require.NoError(mt, s.Set(context.Background(), "k", "v"))
	})

	mt.Run("set reports command errors", func(mt *mtest.T) {
		s := &store{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    91,
			Name:    "ShutdownInProgress",
			Message: "shutting down",
		}))

		err := s.Set(context.Background(), "k", "v")
		assert.ErrorContains(mt, err, "failed to set key k")
	})

	mt.Run("remove", func(mt *mtest.T) {
		s := &store{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		require.NoError(mt, s.Remove(context.Background(), "k"))
	})
}

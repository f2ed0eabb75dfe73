package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"
	"idguard.io/infrastructure/database"
)

// MongoRepository wraps one collection with typed CRUD helpers. T must
// know how to stamp its own ids and timestamps through ParseModel.
type MongoRepository[T database.BaseModel] struct {
	Model *mongo.Collection
}

package repository

import (
	"sync"

	"idguard.io/entities"
	"idguard.io/infrastructure/database/connection/datastore"
	"idguard.io/infrastructure/database/repository/mongo"
)

var recognitionEventOnce = sync.Once{}

var recognitionEventRepository mongo.MongoRepository[entities.RecognitionEvent]

func RecognitionEventRepo() *mongo.MongoRepository[entities.RecognitionEvent] {
	recognitionEventOnce.Do(func() {
		recognitionEventRepository = mongo.MongoRepository[entities.RecognitionEvent]{Model: datastore.RecognitionEventModel}
	})
	return &recognitionEventRepository
}

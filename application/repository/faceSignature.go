package repository

import (
	"sync"

	"idguard.io/entities"
	"idguard.io/infrastructure/database/connection/datastore"
	"idguard.io/infrastructure/database/repository/mongo"
)

var faceSignatureOnce = sync.Once{}

var faceSignatureRepository mongo.MongoRepository[entities.FaceSignature]

func FaceSignatureRepo() *mongo.MongoRepository[entities.FaceSignature] {
	faceSignatureOnce.Do(func() {
		faceSignatureRepository = mongo.MongoRepository[entities.FaceSignature]{Model: datastore.FaceSignatureModel}
	})
	return &faceSignatureRepository
}

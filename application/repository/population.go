package repository

import (
	"sync"

	"idguard.io/entities"
	"idguard.io/infrastructure/database/connection/datastore"
	"idguard.io/infrastructure/database/repository/mongo"
)

var populationOnce = sync.Once{}

var populationRepository mongo.MongoRepository[entities.Population]

func PopulationRepo() *mongo.MongoRepository[entities.Population] {
	populationOnce.Do(func() {
		populationRepository = mongo.MongoRepository[entities.Population]{Model: datastore.PopulationModel}
	})
	return &populationRepository
}

package repository

import (
	"sync"

	"idguard.io/entities"
	"idguard.io/infrastructure/database/connection/datastore"
	"idguard.io/infrastructure/database/repository/mongo"
)

var memberOnce = sync.Once{}

var memberRepository mongo.MongoRepository[entities.Member]

func MemberRepo() *mongo.MongoRepository[entities.Member] {
	memberOnce.Do(func() {
		memberRepository = mongo.MongoRepository[entities.Member]{Model: datastore.MemberModel}
	})
	return &memberRepository
}

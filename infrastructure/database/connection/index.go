package connection

import (
	"idguard.io/infrastructure/database/connection/cache"
	"idguard.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}

func CleanUpDatabaseConnections() {
	datastore.CleanUp()
	cache.CleanUp()
}

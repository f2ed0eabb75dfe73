package startup

import (
	"idguard.io/infrastructure/biometric/extractor"
	"idguard.io/infrastructure/biometric/liveness"
	"idguard.io/infrastructure/database"
	"idguard.io/infrastructure/database/connection/datastore"
	fileupload "idguard.io/infrastructure/file_upload"
	"idguard.io/infrastructure/logger"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	fileupload.InitialiseFileUploader()
	if err := extractor.InitialiseExtractor(); err != nil {
		logger.Error("failed to initialise the signature extractor", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
	if err := liveness.InitialiseLivenessService(); err != nil {
		logger.Error("failed to initialise the liveness engine", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
	if extractor.Service != nil {
		extractor.Service.Close()
	}
	if liveness.Service != nil {
		liveness.Service.Close()
	}
}

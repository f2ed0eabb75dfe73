package datastore

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"idguard.io/infrastructure/logger"
)

var (
	PopulationModel       *mongo.Collection
	MemberModel           *mongo.Collection
	FaceSignatureModel    *mongo.Collection
	AttendanceRecordModel *mongo.Collection
	RecognitionEventModel *mongo.Collection
)

var mongoCancel *context.CancelFunc

func ConnectToDatabase() {
	mongoCancel = connectMongo()
}

func CleanUp() {
	if mongoCancel != nil {
		(*mongoCancel)()
	}
}

func connectMongo() *context.CancelFunc {
	url := os.Getenv("DB_URL")

	if url == "" {
		logger.Error("mongo url missing")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)

	if err != nil {
		logger.Warning("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return &cancel
	}

	db := client.Database(os.Getenv("DB_NAME"))
	setUpIndexes(ctx, db)

	logger.Info("connected to mongodb successfully")
	return &cancel
}

// Set up the indexes for the database
func setUpIndexes(ctx context.Context, db *mongo.Database) {
	PopulationModel = db.Collection("Populations")
	PopulationModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "ownerID", Value: 1}},
		Options: options.Index(),
	}})

	MemberModel = db.Collection("Members")
	MemberModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "populationID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "srn", Value: 1}},
		Options: options.Index(),
	}})

	FaceSignatureModel = db.Collection("FaceSignatures")
	FaceSignatureModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "populationID", Value: 1}},
		Options: options.Index().SetUnique(true),
	}})

	AttendanceRecordModel = db.Collection("AttendanceRecords")
	AttendanceRecordModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "populationID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index(),
	}})

	RecognitionEventModel = db.Collection("RecognitionEvents")
	RecognitionEventModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "populationID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}

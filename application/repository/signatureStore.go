package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
	"idguard.io/application/utils"
	"idguard.io/infrastructure/biometric"
	signaturecache "idguard.io/infrastructure/signature_cache"
)

// faceSignatureStore is the durable tier behind the in-memory signature
// cache. One document per population, replaced wholesale on every save.
type faceSignatureStore struct{}

func (store *faceSignatureStore) Load(ctx context.Context, populationID string) (biometric.EnrolledSet, error) {
	document, err := FaceSignatureRepo().FindOneByFilter(map[string]interface{}{
		"populationID": populationID,
	})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return biometric.EnrolledSet{}, nil
	}

	set := make(biometric.EnrolledSet, len(document.Vectors))
	for memberID, components := range document.Vectors {
		vector, err := biometric.NewSignatureVector(components)
		if err != nil {
			return nil, fmt.Errorf("stored signature for member %s is unusable: %w", memberID, err)
		}
		set[memberID] = vector
	}
	return set, nil
}

func (store *faceSignatureStore) Save(ctx context.Context, populationID string, set biometric.EnrolledSet) error {
	vectors := make(map[string][]float64, len(set))
	for memberID, vector := range set {
		vectors[memberID] = vector
	}

	_, err := FaceSignatureRepo().UpdateWithOperators(map[string]interface{}{
		"populationID": populationID,
	}, map[string]interface{}{
		"$set": map[string]interface{}{
			"vectors":    vectors,
			"dimensions": biometric.Dimensions,
			"trainedAt":  time.Now(),
			"updatedAt":  time.Now(),
		},
		"$setOnInsert": map[string]interface{}{
			"_id":          utils.GenerateULIDString(),
			"populationID": populationID,
			"createdAt":    time.Now(),
		},
	}, options.Update().SetUpsert(true))
	return err
}

var signatureStoreOnce = sync.Once{}

var signatureStore *signaturecache.SignatureCache

// SignatureStore returns the process-wide two-tier signature cache backed
// by the FaceSignatures collection.
func SignatureStore() *signaturecache.SignatureCache {
	signatureStoreOnce.Do(func() {
		signatureStore = signaturecache.New(&faceSignatureStore{})
	})
	return signatureStore
}

package enrollment_usecases

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/logger"
)

// acquisitionConcurrency caps the enrollment photo fan-out. The cap bounds
// resource usage only; pipeline results are identical at any setting.
const acquisitionConcurrency = 8

// ErrZeroEnrolled means a training run finished without producing a single
// usable signature. Training that enrolls nobody is a failed outcome, not
// a quiet success.
var ErrZeroEnrolled = errors.New("training produced no usable signatures")

// MemberPhoto is one roster entry handed to the pipeline.
type MemberPhoto struct {
	MemberID string
	PhotoRef string
}

// imageFetcher resolves a member's photo reference into raw image bytes.
type imageFetcher func(ctx context.Context, photoRef string) ([]byte, error)

// signatureExtractor is the slice of the extraction capability the
// pipeline consumes.
type signatureExtractor interface {
	Extract(image []byte) (biometric.SignatureVector, error)
}

type acquiredImage struct {
	member MemberPhoto
	image  []byte
	err    error
}

// acquireImages fetches every member's photo concurrently and waits for
// the whole batch before returning. A failed fetch only marks its own
// slot; it never cancels or aborts the siblings.
func acquireImages(ctx context.Context, members []MemberPhoto, fetch imageFetcher) []acquiredImage {
	acquired := make([]acquiredImage, len(members))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(acquisitionConcurrency)
	for i, member := range members {
		group.Go(func() error {
			image, err := fetch(groupCtx, member.PhotoRef)
			acquired[i] = acquiredImage{member: member, image: image, err: err}
			// always nil: one member's failure must not cancel the batch
			return nil
		})
	}
	group.Wait()

	return acquired
}

// buildEnrolledSet extracts a signature from every acquired image.
// Extraction failures are skipped the same way acquisition failures are;
// the ids of skipped members come back for the training summary.
func buildEnrolledSet(acquired []acquiredImage, extract signatureExtractor) (biometric.EnrolledSet, []string) {
	set := biometric.EnrolledSet{}
	failed := []string{}

	for _, item := range acquired {
		if item.err != nil {
			logger.Warning("skipping member whose photo could not be acquired", logger.LoggerOptions{
				Key:  "memberID",
				Data: item.member.MemberID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: item.err,
			})
			failed = append(failed, item.member.MemberID)
			continue
		}

		vector, err := extract.Extract(item.image)
		if err != nil {
			logger.Warning("skipping member whose photo produced no signature", logger.LoggerOptions{
				Key:  "memberID",
				Data: item.member.MemberID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			failed = append(failed, item.member.MemberID)
			continue
		}
		set[item.member.MemberID] = vector
	}

	return set, failed
}

// runMemberPipeline is the full acquisition-then-extraction pass over a
// roster. Acquisition is the only concurrent phase; extraction starts
// after every fetch has settled.
func runMemberPipeline(ctx context.Context, members []MemberPhoto, fetch imageFetcher, extract signatureExtractor) (biometric.EnrolledSet, []string) {
	acquired := acquireImages(ctx, members, fetch)
	return buildEnrolledSet(acquired, extract)
}

package certification

import "context"

// ArtifactGenerator produces the durable certificate document and returns
// its path relative to the media root. Failures propagate to the caller;
// the Certification row is never rolled back because of one.
type ArtifactGenerator interface {
	Generate(ctx context.Context, cert *Certification, score float64) (string, error)
}

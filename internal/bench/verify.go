package bench

import (
	"context"
	"math/rand"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fieldbench/internal/errors"
	"github.com/agbru/fieldbench/internal/field"
)

// Verify runs a randomized equivalence sweep: pairs of operands with limbs
// drawn uniformly from the full legal range are fed to every strategy, and
// the outputs are compared limb-for-limb. The sweep is sharded across
// errgroup workers; the first divergence cancels the remaining work and is
// returned as a MismatchError.
//
// The sweep is deterministic for a given seed and pair count (worker shards
// derive their generators from seed and shard index, independent of
// scheduling).
func Verify(ctx context.Context, multipliers []field.Multiplier, pairs uint64, seed int64) error {
	if len(multipliers) < 2 {
		return apperrors.NewConfigError("verification requires at least two strategies, got %d", len(multipliers))
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "bench.verify",
		trace.WithAttributes(attribute.Int64("pairs", int64(pairs))))
	defer span.End()

	workers := runtime.GOMAXPROCS(0)
	if uint64(workers) > pairs {
		workers = int(pairs)
	}
	if workers == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	share := pairs / uint64(workers)
	extra := pairs % uint64(workers)

	for w := 0; w < workers; w++ {
		count := share
		if uint64(w) < extra {
			count++
		}
		rng := rand.New(rand.NewSource(seed + int64(w)))
		g.Go(func() error {
			return verifyShard(ctx, multipliers, count, rng)
		})
	}
	return g.Wait()
}

// verifyShard checks count random pairs with the given generator.
func verifyShard(ctx context.Context, multipliers []field.Multiplier, count uint64, rng *rand.Rand) error {
	var ref, got field.Element
	for i := uint64(0); i < count; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		a := randomElement(rng)
		b := randomElement(rng)

		multipliers[0].Mul(&ref, &a, &b)
		for _, m := range multipliers[1:] {
			m.Mul(&got, &a, &b)
			if !got.Equal(&ref) {
				return apperrors.MismatchError{
					Reference:    multipliers[0].Name(),
					Candidate:    m.Name(),
					ReferenceHex: ref.Hex(),
					CandidateHex: got.Hex(),
				}
			}
		}
	}
	return nil
}

// randomElement draws an element with every limb uniform over [0, 2^52).
func randomElement(rng *rand.Rand) field.Element {
	var e field.Element
	for i := range e {
		e[i] = rng.Uint64() & field.LimbMask
	}
	return e
}
